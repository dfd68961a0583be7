package client

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/MKhiriev/go-armqr/internal/adapter"
	"github.com/MKhiriev/go-armqr/internal/app"
	"github.com/MKhiriev/go-armqr/internal/credentials"
	"github.com/MKhiriev/go-armqr/models"
	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorError   = color.New(color.FgRed, color.Bold).SprintFunc()
	colorActive  = color.New(color.FgGreen, color.Bold).SprintFunc()
	colorMuted   = color.New(color.FgHiBlack).SprintFunc()
)

func printProfiles(w io.Writer, profiles []models.ProfileView) error {
	if len(profiles) == 0 {
		_, err := fmt.Fprintln(w, colorMuted("no profiles"))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tID\tNAME\tACTION")
	// colors only in the last column, escape codes would break alignment
	for _, p := range profiles {
		marker, action := " ", describeAction(p)
		if p.Active {
			marker, action = "*", action+" "+colorActive("(active)")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, p.ID, p.Name, action)
	}
	return tw.Flush()
}

func describeAction(p models.ProfileView) string {
	if p.Kind == models.ActionRedirect {
		return "redirect " + p.TargetURI
	}
	return colorMuted("landing page")
}

// describeError turns well-known failures into the same advice the admin
// page shows.
func describeError(err error) string {
	switch {
	case errors.Is(err, credentials.ErrNotLoggedIn):
		return app.MsgNotLoggedIn
	case errors.Is(err, adapter.ErrUnauthorized):
		return app.MsgUnauthorized
	default:
		return err.Error()
	}
}
