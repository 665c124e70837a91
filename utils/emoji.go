package utils

import (
	"regexp"
	"sort"
	"strings"

	"github.com/forPelevin/gomoji"
)

// emojiVersionPrefix matches the unicode version tag in CLDR emoji names,
// e.g. the "E4.0" in "E4.0 person shrugging: medium-dark skin tone".
var emojiVersionPrefix = regexp.MustCompile(`^E\d+(\.\d+)?\s+`)

// variationSelector forces emoji presentation of the preceding character.
// It is part of sequences like ❤️ and must not survive into the replaced
// text.
const variationSelector = "\ufe0f"

// EmojiCount returns the number of emoji occurrences in text.
func EmojiCount(text string) int {
	_, count := demojize(text)
	return count
}

// Demojize replaces every unicode emoji in text with its :shortcode: alias.
// The alias is derived from the CLDR emoji name the same way the original
// dataset was written: version prefix stripped, colons removed, spaces
// replaced by underscores, so 🤷🏾 becomes
// :person_shrugging_medium-dark_skin_tone:.
func Demojize(text string) string {
	replaced, _ := demojize(text)
	return replaced
}

// demojize replaces matches longest sequence first, so a variation-selector
// form like ❤️ is consumed whole before the bare ❤ it contains, and counts
// each occurrence exactly once.
func demojize(text string) (string, int) {
	found := gomoji.FindAll(text)
	if len(found) == 0 {
		return text, 0
	}

	sort.SliceStable(found, func(i, j int) bool {
		return len(found[i].Character) > len(found[j].Character)
	})

	count := 0
	for _, e := range found {
		occurrences := strings.Count(text, e.Character)
		if occurrences == 0 {
			continue
		}
		count += occurrences
		text = strings.ReplaceAll(text, e.Character, ":"+emojiAlias(e)+":")
	}
	return strings.ReplaceAll(text, variationSelector, ""), count
}

func emojiAlias(e gomoji.Emoji) string {
	name := emojiVersionPrefix.ReplaceAllString(e.UnicodeName, "")
	name = strings.ReplaceAll(name, ":", "")
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}
