package cards

import (
	"strings"

	"github.com/nexcard/nexcard/internal/domain"
)

// vcardEscaper escapes text values. Every line break, CR included, becomes
// the escaped \n so user text can never start a new content line.
var vcardEscaper = strings.NewReplacer(
	`\`, `\\`,
	",", `\,`,
	";", `\;`,
	"\r\n", `\n`,
	"\r", `\n`,
	"\n", `\n`,
)

// VCard encodes a card as a vCard 3.0 contact. Lines end in CRLF.
func VCard(c domain.Card) string {
	p := c.Profile
	var b strings.Builder
	line := func(key, value string) {
		if value == "" {
			return
		}
		b.WriteString(key)
		b.WriteByte(':')
		b.WriteString(value)
		b.WriteString("\r\n")
	}

	b.WriteString("BEGIN:VCARD\r\nVERSION:3.0\r\n")
	line("FN", vcardEscaper.Replace(p.FullName))
	line("N", vcardName(p.FullName))
	line("TITLE", vcardEscaper.Replace(p.Title))
	line("ORG", vcardEscaper.Replace(p.Company))
	line("EMAIL;TYPE=INTERNET", vcardEscaper.Replace(p.Email))
	line("TEL;TYPE=WORK", vcardEscaper.Replace(p.Phone))
	line("URL", vcardEscaper.Replace(p.Website))
	if p.Address != "" {
		line("ADR;TYPE=WORK", ";;"+vcardEscaper.Replace(p.Address)+";;;;")
	}
	b.WriteString("END:VCARD\r\n")
	return b.String()
}

// vcardName splits a display name into "family;given" on the last space.
func vcardName(full string) string {
	full = strings.TrimSpace(full)
	if full == "" {
		return ""
	}
	i := strings.LastIndex(full, " ")
	if i < 0 {
		return vcardEscaper.Replace(full) + ";;;;"
	}
	return vcardEscaper.Replace(full[i+1:]) + ";" + vcardEscaper.Replace(full[:i]) + ";;;"
}

// VCardFilename is the download name for a card's vCard.
func VCardFilename(c domain.Card) string {
	return c.Slug() + ".vcf"
}
