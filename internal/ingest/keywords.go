package ingest

import "strings"

// crisisKeywords - ключевые слова для грубой предфильтрации постов
// перед вызовом классификатора
var crisisKeywords = []string{
	"earthquake", "fire", "flood", "hurricane", "tornado",
	"tsunami", "explosion", "shooting", "emergency", "evacuation",
	"disaster", "crisis", "accident", "collapsed", "trapped",
	"injured", "casualties", "warning", "alert", "danger",
}

// ContainsCrisisKeyword возвращает true, если текст содержит хотя бы одно
// кризисное ключевое слово (без учета регистра)
func ContainsCrisisKeyword(text string) bool {
	lower := strings.ToLower(text)
	for _, kw := range crisisKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
