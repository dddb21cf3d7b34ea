package open

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sferro/chatlens/internal/store"
)

// OpenSource opens the original chat export behind a stored analysis in
// $EDITOR (less when unset).
func OpenSource(db *store.DB, id string) error {
	meta, _, err := db.Get(id)
	if err != nil {
		return fmt.Errorf("get analysis: %w", err)
	}
	if meta == nil {
		return fmt.Errorf("analysis not found: %s", id)
	}

	if _, err := os.Stat(meta.FilePath); err != nil {
		return fmt.Errorf("file not found: %s", meta.FilePath)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "less"
	}

	return openInEditor(editor, meta.FilePath)
}

func openInEditor(editor, filePath string) error {
	var cmd *exec.Cmd

	switch {
	case strings.Contains(editor, "code"):
		cmd = exec.Command(editor, "--goto", filePath)
	default:
		cmd = exec.Command(editor, filePath)
	}

	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
