package view

import "strings"

// PracticeIconOption describes a selectable icon option for practice areas.
type PracticeIconOption struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

type practiceIconAsset struct {
	Key   string
	SVG   string
	Label string
}

var (
	practiceIconDefinitions = []practiceIconAsset{
		{Key: "scales", Label: "Scales of Justice", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M12 3v18M5 6l7-2 7 2M5 6l-3 7a4 4 0 0 0 6 0L5 6ZM19 6l-3 7a4 4 0 0 0 6 0l-3-7ZM8 21h8"/></svg>`},
		{Key: "gavel", Label: "Gavel", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="m14 13-7.5 7.5a2.12 2.12 0 0 1-3-3L11 10M16 16l6 6M8 8l6-6M9 7l8 8M21 11l-8-8"/></svg>`},
		{Key: "briefcase", Label: "Briefcase", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><rect x="2" y="7" width="20" height="14" rx="2"/><path d="M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/></svg>`},
		{Key: "shield", Label: "Shield", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M12 22s8-4 8-10V5l-8-3-8 3v7c0 6 8 10 8 10Z"/></svg>`},
		{Key: "document", Label: "Document", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M14 2H6a2 2 0 0 0-2 2v16a2 2 0 0 0 2 2h12a2 2 0 0 0 2-2V8l-6-6ZM14 2v6h6M16 13H8M16 17H8M10 9H8"/></svg>`},
		{Key: "family", Label: "Family", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="M17 21v-2a4 4 0 0 0-4-4H5a4 4 0 0 0-4 4v2M23 21v-2a4 4 0 0 0-3-3.87M16 3.13a4 4 0 0 1 0 7.75"/><circle cx="9" cy="7" r="4"/></svg>`},
		{Key: "home", Label: "Property", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="m3 9 9-7 9 7v11a2 2 0 0 1-2 2H5a2 2 0 0 1-2-2V9ZM9 22V12h6v10"/></svg>`},
		{Key: "handshake", Label: "Agreement", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><path d="m11 17 2 2a1 1 0 1 0 3-3M14 14l2.5 2.5a1 1 0 1 0 3-3l-3.88-3.88a3 3 0 0 0-4.24 0l-.88.88a1 1 0 1 1-3-3l2.81-2.81a5.79 5.79 0 0 1 7.06-.87l.47.28a2 2 0 0 0 1.42.25L21 4M21 3l1 11h-2M3 3 2 14h6.5M3 4h8"/></svg>`},
	}
	defaultPracticeIcon = practiceIconAsset{Key: "default", Label: "Default", SVG: `<svg viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="1.5" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="9"/><path d="M12 8v4M12 16h.01"/></svg>`}
	practiceIconLookup  = func() map[string]practiceIconAsset {
		lookup := make(map[string]practiceIconAsset, len(practiceIconDefinitions)+1)
		for _, icon := range practiceIconDefinitions {
			lookup[icon.Key] = icon
		}
		lookup[defaultPracticeIcon.Key] = defaultPracticeIcon
		return lookup
	}()
)

// PracticeIconOptions exposes the selectable icon metadata for the admin UI.
func PracticeIconOptions() []PracticeIconOption {
	options := make([]PracticeIconOption, 0, len(practiceIconDefinitions))
	for _, icon := range practiceIconDefinitions {
		options = append(options, PracticeIconOption{Key: icon.Key, Label: icon.Label})
	}
	return options
}

// PracticeIconSVG returns the inline SVG markup for the given key, falling
// back to the default glyph for unknown or empty keys.
func PracticeIconSVG(key string) string {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if icon, ok := practiceIconLookup[normalized]; ok {
		return icon.SVG
	}
	return defaultPracticeIcon.SVG
}

// IsPracticeIconKey reports whether key names a known glyph. The empty key is
// allowed; it renders as the default glyph.
func IsPracticeIconKey(key string) bool {
	normalized := strings.ToLower(strings.TrimSpace(key))
	if normalized == "" {
		return true
	}
	_, ok := practiceIconLookup[normalized]
	return ok
}
