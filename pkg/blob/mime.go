package blob

import (
	"bytes"
	"io"
	"net/http"
)

// mimeDetectionBytes is what http.DetectContentType needs at most.
const mimeDetectionBytes = 512

// detectMIME sniffs the content type from the reader's leading bytes and
// returns a replacement reader that replays them.
func detectMIME(r io.Reader) (string, io.Reader, error) {
	head := make([]byte, mimeDetectionBytes)
	n, err := io.ReadFull(r, head)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return "", nil, err
	}
	head = head[:n]
	return http.DetectContentType(head), io.MultiReader(bytes.NewReader(head), r), nil
}
