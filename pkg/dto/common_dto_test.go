package dto

import (
	"strings"
	"testing"
)

func TestPageQueryOffset(t *testing.T) {
	cases := []struct {
		page, limit, want int
	}{
		{0, 5, 0},
		{1, 5, 0},
		{3, 5, 10},
	}
	for _, c := range cases {
		if got := (PageQuery{Page: c.page}).Offset(c.limit); got != c.want {
			t.Fatalf("Offset(page=%d, limit=%d) = %d, want %d", c.page, c.limit, got, c.want)
		}
	}
}

type closableReader struct {
	*strings.Reader
	closed bool
}

func (r *closableReader) Close() error {
	r.closed = true
	return nil
}

func TestImageFileClose(t *testing.T) {
	var nilFile *ImageFile
	nilFile.Close() // must not panic

	(&ImageFile{Reader: strings.NewReader("plain")}).Close()

	reader := &closableReader{Reader: strings.NewReader("img")}
	(&ImageFile{Reader: reader, FileName: "a.png"}).Close()
	if !reader.closed {
		t.Fatalf("underlying file was not closed")
	}
}
