package extract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"
)

// ErrUnreadable wraps every failure to read text out of an uploaded document.
var ErrUnreadable = errors.New("unreadable pdf")

// FromBytes extracts the plain text of an in-memory PDF.
func FromBytes(ctx context.Context, data []byte) (string, error) {
	if len(data) == 0 {
		return "", fmt.Errorf("%w: empty file", ErrUnreadable)
	}
	return FromPDF(ctx, bytes.NewReader(data), int64(len(data)))
}

// FromPDF concatenates the text of every page in order and trims the result.
// Pages without a page object are skipped. A document with no text yields "".
func FromPDF(ctx context.Context, r io.ReaderAt, size int64) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// ledongthuc/pdf panics on some malformed inputs.
	defer func() {
		if rec := recover(); rec != nil {
			text = ""
			err = fmt.Errorf("%w: %v", ErrUnreadable, rec)
		}
	}()

	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	var b strings.Builder
	numPages := reader.NumPage()
	for i := 1; i <= numPages; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		pageText, err := page.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("%w: page %d: %v", ErrUnreadable, i, err)
		}
		b.WriteString(pageText)
	}
	return strings.TrimSpace(b.String()), nil
}
