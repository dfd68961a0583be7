// Package utils holds small helpers shared by the server and the admin
// client: JSON response writing, the preconfigured resty client and profile
// id generation.
package utils
