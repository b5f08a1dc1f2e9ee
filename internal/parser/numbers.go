package parser

// Chinese numeral conversion for statute headers (第一百零八条 -> 108).

var chineseDigits = map[rune]int{
	'零': 0, '一': 1, '二': 2, '三': 3, '四': 4,
	'五': 5, '六': 6, '七': 7, '八': 8, '九': 9,
}

var chineseUnits = map[rune]int{
	'十': 10, '百': 100, '千': 1000, '万': 10000,
}

// ParseChineseNumber converts a Chinese numeral string to an int.
// Returns 0 for empty or unparseable input.
func ParseChineseNumber(s string) int {
	result := 0
	temp := 0

	for _, r := range s {
		if d, ok := chineseDigits[r]; ok {
			if d == 0 {
				// 零 is a placeholder only
				continue
			}
			temp = d
			continue
		}

		if unit, ok := chineseUnits[r]; ok {
			// Bare unit means one of it: 十 -> 10, 十五 -> 15
			if temp == 0 {
				temp = 1
			}
			result += temp * unit
			temp = 0
			continue
		}

		// Unknown rune, skip
	}

	return result + temp
}
