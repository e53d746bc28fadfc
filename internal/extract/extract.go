// Package extract parses a free-text search description into a partial
// filter intent. It is pattern and keyword based, never raises, and yields
// an all-unset intent for text it cannot interpret.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/Paurakh977/HomeStay-MCP/internal/domain/feature"
	"github.com/Paurakh977/HomeStay-MCP/internal/domain/intent"
)

// Optionality cues split a description into a MUST half and an OPTIONAL
// half. Order matters: the longer compound cue is tried before its suffix.
var optionalityCues = []string{
	"and if possible",
	"if possible",
	"optionally",
	"if available",
	"would be nice",
	"preferably",
}

var (
	parenGroups    = regexp.MustCompile(`\(([^)]+)\)`)
	disjunctionCue = regexp.MustCompile(`\b(or|any of|either|one of)\b`)

	// Rating patterns, tried in order; the first hit wins.
	ratingPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)rating\s+(?:over|above|more than)\s+(\d+(?:\.\d+)?)`),
		regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*\+?\s*stars?\b`),
		regexp.MustCompile(`(?i)minimum\s+rating\s+(?:of\s+)?(\d+(?:\.\d+)?)`),
	}

	teamPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:at least|more than|over|minimum(?: of)?)\s+(\d+)\s+(?:team\s+|committee\s+)?members`),
		regexp.MustCompile(`(?i)(\d+)\s*\+\s*(?:team\s+|committee\s+)?members`),
	}

	// Location patterns capture "<words> <unit>" after a preposition. The
	// transliterated unit names cover romanized Nepali descriptions.
	provincePattern     = regexp.MustCompile(`(?i)(?:in|from|under)\s+([\w\p{Devanagari} ]+?)\s+(?:province|pradesh)\b`)
	provinceNumber      = regexp.MustCompile(`(?i)\bprovince\s+(?:no\.?\s*)?(\d+)\b`)
	districtPattern     = regexp.MustCompile(`(?i)(?:in|from|under)\s+([\w\p{Devanagari} ]+?)\s+(?:district|jilla)\b`)
	municipalityPattern = regexp.MustCompile(`(?i)(?:in|from|under)\s+([\w\p{Devanagari} ]+?)\s+(?:municipality|gaupalika|nagarpalika)\b`)
	cityPattern         = regexp.MustCompile(`(?i)(?:in|from|under)\s+([\w\p{Devanagari} ]+?)\s+(?:city|sahar)\b`)
	villagePattern      = regexp.MustCompile(`(?i)(?:in|from|under)\s+([\w\p{Devanagari} ]+?)\s+(?:village|gaun)\b`)

	femaleOperatorCues = []string{"women-run", "women run", "female operated", "female-operated", "run by women"}
	maleOperatorCues   = []string{"men-run", "men run", "male operated", "male-operated", "run by men"}
	communityCues      = []string{"committee-driven", "committee driven", "community-run", "community run"}
)

// Extract parses text into a partial intent. It sets only what the text
// actually expresses: the operator pointer, in particular, is set solely
// when a disjunction cue is present, so the merge step can tell a real OR
// request from the generic default.
func Extract(text string) intent.Intent {
	var in intent.Intent
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return in
	}
	lowered := strings.ToLower(trimmed)

	mustText, optionalText, split := splitOnCue(lowered)
	switch {
	case split:
		assignTokens(&in, mustText, optionalText)
	case disjunctionCue.MatchString(lowered):
		op := intent.OperatorOr
		in.Operator = &op
		assignTokens(&in, "", lowered)
	default:
		assignTokens(&in, lowered, "")
	}

	extractRating(&in, lowered)
	extractTeamSize(&in, lowered)
	extractLocation(&in, lowered)
	extractFlags(&in, lowered)

	return in
}

// splitOnCue separates the MUST half from the OPTIONAL half. Parenthesized
// groups take priority: "(A, B) and if possible (C)" keeps the first group
// strict and everything from the cue-preceded group onwards optional. With
// no parentheses the text splits once on the first optionality cue.
func splitOnCue(text string) (must, optional string, ok bool) {
	groups := parenGroups.FindAllStringSubmatchIndex(text, -1)
	if len(groups) >= 2 {
		between := text[groups[0][1]:groups[1][0]]
		if _, found := firstCue(between); found {
			return text[groups[0][2]:groups[0][3]], text[groups[1][0]:], true
		}
	}

	if idx, found := firstCue(text); found {
		cueLen := len(cueAt(text, idx))
		return text[:idx], text[idx+cueLen:], true
	}
	return "", "", false
}

func firstCue(text string) (int, bool) {
	best := -1
	for _, cue := range optionalityCues {
		if idx := strings.Index(text, cue); idx >= 0 && (best < 0 || idx < best) {
			best = idx
		}
	}
	return best, best >= 0
}

func cueAt(text string, idx int) string {
	for _, cue := range optionalityCues {
		if strings.HasPrefix(text[idx:], cue) {
			return cue
		}
	}
	return ""
}

// assignTokens runs keyword matching per category over each half.
func assignTokens(in *intent.Intent, mustText, optionalText string) {
	for _, c := range feature.Categories() {
		set := intent.FeatureSet{}
		if mustText != "" {
			set.Must = feature.MatchText(mustText, c)
		}
		if optionalText != "" {
			set.Optional = feature.MatchText(optionalText, c)
		}
		if !set.HasTokens() {
			continue
		}
		switch c {
		case feature.CategoryAttraction:
			in.Attractions = set
		case feature.CategoryInfrastructure:
			in.Infrastructure = set
		case feature.CategoryService:
			in.Services = set
		}
	}
}

func extractRating(in *intent.Intent, text string) {
	for _, p := range ratingPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			in.MinRating = &v
		}
		return
	}
}

func extractTeamSize(in *intent.Intent, text string) {
	for _, p := range teamPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if v, err := strconv.Atoi(m[1]); err == nil {
			in.MinTeamMembers = &v
		}
		return
	}
}

func extractLocation(in *intent.Intent, text string) {
	if m := provincePattern.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		in.Province = &v
	} else if m := provinceNumber.FindStringSubmatch(text); m != nil {
		v := "Province " + m[1]
		in.Province = &v
	}
	if m := districtPattern.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		in.District = &v
	}
	if m := municipalityPattern.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		in.Municipality = &v
	}
	if m := cityPattern.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		in.City = &v
	}
	if m := villagePattern.FindStringSubmatch(text); m != nil {
		v := strings.TrimSpace(m[1])
		in.VillageName = &v
	}
}

// extractFlags handles literal substring checks. There is no negation
// handling: presence of the substring alone sets the flag.
func extractFlags(in *intent.Intent, text string) {
	if strings.Contains(text, "verified") {
		v := true
		in.IsVerified = &v
	}
	if strings.Contains(text, "featured") {
		v := true
		in.IsFeatured = &v
	}
	for _, cue := range communityCues {
		if strings.Contains(text, cue) {
			v := "community"
			in.HomestayType = &v
			break
		}
	}
	for _, cue := range femaleOperatorCues {
		if strings.Contains(text, cue) {
			v := "female"
			in.OperatorGender = &v
			return
		}
	}
	for _, cue := range maleOperatorCues {
		if strings.Contains(text, cue) {
			v := "male"
			in.OperatorGender = &v
			return
		}
	}
}
