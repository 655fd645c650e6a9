package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// WriteSummary saves a generated summary to disk. The format follows the
// file extension: .docx gets styled paragraphs, anything else is written
// as title-headed markdown.
func WriteSummary(path, title, summary string) error {
	if strings.EqualFold(filepath.Ext(path), ".docx") {
		if err := summaryToDocx(title, summary, path); err != nil {
			return fmt.Errorf("write docx %s: %w", path, err)
		}
		return nil
	}

	md := fmt.Sprintf("# %s\n\n_%s_\n\n%s\n",
		title,
		time.Now().Format("2006-01-02 15:04"),
		strings.TrimSpace(summary),
	)
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return fmt.Errorf("write markdown %s: %w", path, err)
	}
	return nil
}
