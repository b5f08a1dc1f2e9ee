// Package parser segments statute plain text into ordered clause units.
package parser

import (
	"regexp"
	"strings"

	"github.com/leommxj/LawComparator/internal/models"
)

var (
	chapterRe = regexp.MustCompile(`^第([一二三四五六七八九十]+)章[　\s]*(.*)`)
	sectionRe = regexp.MustCompile(`^第([一二三四五六七八九十]+)节[　\s]*(.*)`)
	articleRe = regexp.MustCompile(`^第([一二三四五六七八九十百千零]+)条[　\s]*(.*)`)
)

// Segment splits raw statute text into an ordered sequence of clause units.
// Clause boundaries are 第X条 headers; chapter (第X章) and section (第X节)
// headers provide context but do not become units themselves.
//
// When no article headers are present the text is split on blank-line
// paragraphs instead and the result is flagged Fallback. Partial structure
// beats a fatal error here: copy-pasted statutes are messy.
func Segment(content string, version models.Version) *models.StatuteDoc {
	doc := &models.StatuteDoc{}

	lines := strings.Split(content, "\n")

	var (
		current          []string // lines of the article being collected
		currentLabel     int
		currentLabelText string
		currentChapter   *models.Heading
		currentSection   *models.Heading
		// context captured when the article header line was seen, so a
		// chapter break inside the collected lines cannot shift it
		articleChapter *models.Heading
		articleSection *models.Heading
	)

	flush := func() {
		if currentLabel == 0 {
			return
		}
		full := strings.TrimSpace(strings.Join(current, "\n"))
		doc.Clauses = append(doc.Clauses, models.ClauseUnit{
			Index:     len(doc.Clauses),
			Label:     currentLabel,
			LabelText: currentLabelText,
			Body:      CleanBody(stripLabel(full)),
			FullText:  full,
			Version:   version,
			Chapter:   articleChapter,
			Section:   articleSection,
		})
		current = nil
		currentLabel = 0
		currentLabelText = ""
	}

	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if m := chapterRe.FindStringSubmatch(line); m != nil {
			h := models.Heading{
				Number: ParseChineseNumber(m[1]),
				Title:  NormalizePunctuation(m[2]),
			}
			doc.Chapters = append(doc.Chapters, h)
			currentChapter = &doc.Chapters[len(doc.Chapters)-1]
			// A new chapter resets the section context
			currentSection = nil
			continue
		}

		if m := sectionRe.FindStringSubmatch(line); m != nil {
			h := models.Heading{
				Number: ParseChineseNumber(m[1]),
				Title:  NormalizePunctuation(m[2]),
			}
			doc.Sections = append(doc.Sections, h)
			currentSection = &doc.Sections[len(doc.Sections)-1]
			continue
		}

		if m := articleRe.FindStringSubmatch(line); m != nil {
			flush()
			currentLabel = ParseChineseNumber(m[1])
			currentLabelText = "第" + m[1] + "条"
			current = []string{line}
			articleChapter = currentChapter
			articleSection = currentSection
			continue
		}

		if currentLabel != 0 {
			current = append(current, line)
		}
	}
	flush()

	if len(doc.Clauses) == 0 {
		return segmentParagraphs(content, version)
	}
	return doc
}

// stripLabel removes the leading 第X条 header from an article's text.
func stripLabel(text string) string {
	if m := articleRe.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[2] + text[len(m[0]):])
	}
	return text
}

// segmentParagraphs is the degraded path: split on blank lines, one
// label-less clause per paragraph.
func segmentParagraphs(content string, version models.Version) *models.StatuteDoc {
	doc := &models.StatuteDoc{Fallback: true}

	// Windows-saved inputs separate paragraphs with \r\n\r\n
	content = strings.ReplaceAll(content, "\r\n", "\n")

	for _, para := range strings.Split(content, "\n\n") {
		body := CleanBody(para)
		if body == "" {
			continue
		}
		doc.Clauses = append(doc.Clauses, models.ClauseUnit{
			Index:    len(doc.Clauses),
			Body:     body,
			FullText: strings.TrimSpace(para),
			Version:  version,
		})
	}

	return doc
}
