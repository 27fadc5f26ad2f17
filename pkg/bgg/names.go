package bgg

// NameSet holds the resolved multi-locale names of a game.
type NameSet struct {
	Primary    string   `yaml:"primary"`
	Japanese   string   `yaml:"japanese,omitempty"`
	English    string   `yaml:"english,omitempty"`
	Alternates []string `yaml:"alternates,omitempty"`
}

// NameCandidate is one raw name tag from a catalog item.
type NameCandidate struct {
	Value string
	Type  string
}

// ResolveNames builds a NameSet from the raw name tags of a catalog item.
//
// The first tag typed "primary" becomes the primary name. The first
// Japanese-classified candidate (in input order) becomes the Japanese name
// and the first English-classified one the English name; everything else
// lands in Alternates. When no tag is typed "primary" the primary name is
// backfilled japanese > english > first candidate.
//
// Returns ErrNoNameFound when the input contains no non-empty value, which
// callers treat as a hard rejection of the catalog item.
func ResolveNames(candidates []NameCandidate) (NameSet, error) {
	var names NameSet

	var usable []NameCandidate
	for _, c := range candidates {
		if c.Value == "" {
			continue
		}
		usable = append(usable, c)
	}
	if len(usable) == 0 {
		return NameSet{}, ErrNoNameFound
	}

	for _, c := range usable {
		if c.Type == "primary" && names.Primary == "" {
			names.Primary = c.Value
		}
	}

	var rest []string
	for _, c := range usable {
		if IsJapaneseText(c.Value) && names.Japanese == "" {
			names.Japanese = c.Value
		} else if IsEnglishText(c.Value) && names.English == "" {
			names.English = c.Value
		} else {
			rest = append(rest, c.Value)
		}
	}

	if names.Primary == "" {
		switch {
		case names.Japanese != "":
			names.Primary = names.Japanese
		case names.English != "":
			names.Primary = names.English
		default:
			names.Primary = usable[0].Value
		}
	}

	// Alternates keep first-seen order, minus duplicates and anything
	// already claimed as primary/japanese/english.
	seen := map[string]bool{
		names.Primary:  true,
		names.Japanese: true,
		names.English:  true,
	}
	for _, v := range rest {
		if seen[v] {
			continue
		}
		seen[v] = true
		names.Alternates = append(names.Alternates, v)
	}

	return names, nil
}

// Display returns the name to show for the requested locale, falling back
// requested locale > english > primary > japanese.
func (n NameSet) Display(locale string) string {
	if locale == "ja" && n.Japanese != "" {
		return n.Japanese
	}
	if locale == "en" && n.English != "" {
		return n.English
	}
	if n.English != "" {
		return n.English
	}
	if n.Primary != "" {
		return n.Primary
	}
	return n.Japanese
}
