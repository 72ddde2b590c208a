package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var slideNamePattern = regexp.MustCompile(`^ppt/slides/slide(\d+)\.xml$`)

// A shape either carries a text body or it does not; shapes without one
// (pictures, connectors, charts) are skipped.
type pptSlide struct {
	Shapes []pptShape `xml:"cSld>spTree>sp"`
}

type pptShape struct {
	TextBody *pptTextBody `xml:"txBody"`
}

type pptTextBody struct {
	Paragraphs []pptParagraph `xml:"p"`
}

type pptParagraph struct {
	Runs []pptRun `xml:"r"`
}

type pptRun struct {
	Text string `xml:"t"`
}

func (s *pptShape) text() (string, bool) {
	if s.TextBody == nil {
		return "", false
	}
	lines := make([]string, 0, len(s.TextBody.Paragraphs))
	for _, para := range s.TextBody.Paragraphs {
		var sb strings.Builder
		for _, run := range para.Runs {
			sb.WriteString(run.Text)
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n"), true
}

// extractPowerPoint concatenates every text-bearing shape across every
// slide, in slide order then shape order, newline-separated.
func extractPowerPoint(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	type slideFile struct {
		number int
		file   *zip.File
	}
	var slides []slideFile
	for _, f := range zr.File {
		m := slideNamePattern.FindStringSubmatch(f.Name)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		slides = append(slides, slideFile{number: n, file: f})
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].number < slides[j].number })

	var parts []string
	for _, sf := range slides {
		rc, err := sf.file.Open()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
		raw, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}

		var slide pptSlide
		if err := xml.Unmarshal(raw, &slide); err != nil {
			return "", fmt.Errorf("%w: slide %d: %v", ErrMalformedDocument, sf.number, err)
		}

		for i := range slide.Shapes {
			if text, ok := slide.Shapes[i].text(); ok {
				parts = append(parts, text)
			}
		}
	}

	return strings.Join(parts, "\n"), nil
}
