package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/linctl-dev/linctl/internal/output"
)

func timeoutSeconds(secs int) time.Duration {
	return time.Duration(secs) * time.Second
}

// printer is the process-wide printer; tests swap it to capture output.
var printer = output.NewPrinter()

// emit prints v as the command's JSON result.
func emit(v any) error {
	return printer.JSON(v)
}

// deleted is the result shape of every delete verb.
type deleted struct {
	Deleted bool   `json:"deleted"`
	ID      string `json:"id"`
}

// emitDeleted prints the delete confirmation: a notice on stderr for the
// human, the JSON result on stdout for the machine.
func emitDeleted(kind, ref string) error {
	printer.Notice("deleted %s %s", kind, ref)
	return emit(deleted{Deleted: true, ID: ref})
}

// changedString implements the tri-state update contract at the flag
// level: nil when the flag was never given, a pointer otherwise. An empty
// value through the pointer means "clear the field".
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetInt(name)
	return &v
}

func changedFloat(cmd *cobra.Command, name string) *float64 {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetFloat64(name)
	return &v
}

func changedStringArray(cmd *cobra.Command, name string) []string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetStringArray(name)
	if v == nil {
		v = []string{}
	}
	return v
}
