package models

// TransferStatus is the per-image outcome printed after each file name.
type TransferStatus string

const (
	StatusOK      TransferStatus = "OK"
	StatusSkipped TransferStatus = "SKIPPED"
	StatusFailed  TransferStatus = "FAILED"
)

// FailedImage records a transfer that did not complete.
type FailedImage struct {
	FileName string `json:"fileName"`
	Error    string `json:"error"`
}

// DownloadReport summarizes one download batch.
type DownloadReport struct {
	Downloaded []string      `json:"downloaded"`
	Skipped    []string      `json:"skipped"`
	Failed     []FailedImage `json:"failed,omitempty"`
}

// Total is the number of entries that were processed.
func (r DownloadReport) Total() int {
	return len(r.Downloaded) + len(r.Skipped) + len(r.Failed)
}
