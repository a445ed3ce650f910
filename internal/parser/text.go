package parser

import (
	"bufio"
	"io"
	"strings"
)

// TextParser handles plain text files. Text passes through with paragraph
// normalization; heading detection is left to the section extractor.
type TextParser struct{}

func (p *TextParser) Parse(r io.Reader, filename string) (*Document, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	w := &writer{}
	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			w.Paragraph(current.String())
			current.Reset()
		}
	}

	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			flush()
		} else {
			if current.Len() > 0 {
				current.WriteString("\n")
			}
			current.WriteString(line)
		}
	}
	flush()

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Document{
		Title: titleFromFilename(filename),
		Text:  w.String(),
	}, nil
}
