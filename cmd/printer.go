package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"omd-cli/pkg/models"
)

// progressPrinter writes one "<name> - <STATUS>" line per image.
type progressPrinter struct {
	w io.Writer
}

func (p *progressPrinter) OnResumeMissing(first string) {
	fmt.Fprintf(p.w, "WARNING: First image %s not found in list, all files will be downloaded\n", first)
}

// The name goes out before the transfer starts so a slow file is visible.
func (p *progressPrinter) OnImageStart(entry models.ImageEntry, dest string) {
	fmt.Fprint(p.w, entry.FileName)
}

func (p *progressPrinter) OnImageDone(entry models.ImageEntry, status models.TransferStatus, err error) {
	fmt.Fprintf(p.w, " - %s\n", status)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("error encoding JSON: %w", err)
	}
	return nil
}
