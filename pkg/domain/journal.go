package domain

import "time"

// JournalDateLayout は日記の日付表示 (dd.MM.yyyy) です。
const JournalDateLayout = "02.01.2006"

// DreamEntry は夢日記の1件です。
type DreamEntry struct {
	ID      string    `json:"id" yaml:"id"`
	Date    time.Time `json:"date" yaml:"date"`
	Title   string    `json:"title" yaml:"title"`
	Content string    `json:"content" yaml:"content"`
}

// DateLabel は日付を dd.MM.yyyy で返します。
func (e DreamEntry) DateLabel() string {
	return e.Date.Format(JournalDateLayout)
}
