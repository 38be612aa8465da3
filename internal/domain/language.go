package domain

// AccentColor is used for bars and badges of languages without a dedicated colour.
const AccentColor = "#8A2BE2"

// Unclassified is the label shown for repositories without a primary language.
const Unclassified = "Other"

// LanguageColor returns the display colour for a primary language name.
// Every input has a colour; unknown and empty names get AccentColor.
func LanguageColor(language string) string {
	switch language {
	case "Python":
		return "#3776AB"
	case "JavaScript":
		return "#F7DF1E"
	case "TypeScript":
		return "#3178C6"
	case "Java":
		return "#007396"
	case "C#":
		return "#239120"
	case "C++":
		return "#00599C"
	case "Go":
		return "#00ADD8"
	case "Rust":
		return "#DEA584"
	case "Ruby":
		return "#CC342D"
	case "PHP":
		return "#777BB4"
	case "Swift":
		return "#FA7343"
	case "Kotlin":
		return "#7F52FF"
	case "Dart":
		return "#0175C2"
	case "HTML":
		return "#E34F26"
	case "CSS":
		return "#1572B6"
	case "Shell":
		return "#89E051"
	default:
		return AccentColor
	}
}

// LanguageLabel returns the language name or Unclassified when it is empty.
func LanguageLabel(language string) string {
	if language == "" {
		return Unclassified
	}
	return language
}
