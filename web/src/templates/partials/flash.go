package partials

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/nexcard/nexcard/internal/view"
)

// FlashID is the element id of the message area.
const FlashID = "flash"

func writeMessages(w io.Writer, class string, messages []string) error {
	for _, m := range messages {
		if _, err := io.WriteString(w, `<div role="alert" class="`+class+`">`+templ.EscapeString(m)+`</div>`); err != nil {
			return err
		}
	}
	return nil
}

// Flash renders the one-shot success and error messages.
func Flash(data view.FlashData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<div id="`+FlashID+`" class="space-y-2 mb-4">`); err != nil {
			return err
		}
		if err := writeMessages(w, "flash flash-success", data.Success); err != nil {
			return err
		}
		if err := writeMessages(w, "flash flash-error", data.Error); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</div>`)
		return err
	})
}
