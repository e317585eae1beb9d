package interview

import "fmt"

// ContentTypePDF is the MIME type of rendered reports.
const ContentTypePDF = "application/pdf"

// Document is a rendered report ready to be sent as a file download.
type Document struct {
	ID          string
	Filename    string
	ContentType string
	Data        []byte
}

// ReportFilename derives the download name for a session's report.
func ReportFilename(sessionID string) string {
	return fmt.Sprintf("Interview_Report_%s.pdf", sessionID)
}
