package commands

import (
	"fmt"
	"io"

	"github.com/colonyops/picklist/internal/core/styles"
)

// printer writes styled status lines for the non-interactive commands.
type printer struct {
	w io.Writer
}

func (p printer) Successf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, styles.SuccessStyle.Render(styles.IconCheck)+" "+fmt.Sprintf(format, args...))
}

func (p printer) Errorf(format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, styles.ErrorStyle.Render(styles.IconNotifyError)+" "+fmt.Sprintf(format, args...))
}

func (p printer) Printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p.w, format+"\n", args...)
}
