// Package quiz は夢の内容を5つの質問で尋ね、用意された解釈の1つを返す夢クイズです。
//
// 解釈は回答内容から推論するものではなく、シード付き乱数で選ばれます。
package quiz

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/shouni/dream-image-kit/pkg/utils"
)

var (
	ErrDescriptionRequired = errors.New("夢の説明を入力してください")
	ErrUnknownQuestion     = errors.New("存在しない質問です")
	ErrInvalidOption       = errors.New("選択肢にない回答です")
	ErrIncomplete          = errors.New("まだ回答していない質問があります")
)

// Question は選択式の質問です。
type Question struct {
	ID      string   `json:"id" yaml:"id"`
	Text    string   `json:"text" yaml:"text"`
	Options []string `json:"options" yaml:"options"`
}

// HasOption は option が選択肢に含まれるかどうかです。
func (q Question) HasOption(option string) bool {
	for _, o := range q.Options {
		if o == option {
			return true
		}
	}
	return false
}

var questions = []Question{
	{ID: "emotion", Text: "Welche Emotion war in deinem Traum am stärksten?", Options: []string{"Freude", "Angst", "Verwirrung", "Trauer", "Wut"}},
	{ID: "setting", Text: "In welcher Umgebung spielte dein Traum hauptsächlich?", Options: []string{"Bekannter Ort", "Fremder Ort", "Fantasiewelt", "Kindheitserinnerung", "Arbeitsplatz"}},
	{ID: "characters", Text: "Wer war in deinem Traum anwesend?", Options: []string{"Familie/Freunde", "Fremde", "Verstorbene", "Berühmtheiten", "Fantasiewesen"}},
	{ID: "actions", Text: "Was hast du in deinem Traum hauptsächlich getan?", Options: []string{"Fliegen", "Laufen/Verfolgt werden", "Sprechen", "Beobachten", "Kämpfen"}},
	{ID: "feeling", Text: "Wie hast du dich beim Aufwachen gefühlt?", Options: []string{"Entspannt", "Verwirrt", "Ängstlich", "Inspiriert", "Müde"}},
}

var interpretations = []string{
	"Dein Traum könnte auf ungelöste emotionale Konflikte hindeuten.",
	"Dieser Traum spiegelt möglicherweise deine aktuellen Lebensziele wider.",
	"Die Symbole in deinem Traum deuten auf einen Neuanfang hin.",
	"Dein Unterbewusstsein verarbeitet vergangene Erfahrungen.",
	"Dieser Traum könnte eine kreative Lösung für ein aktuelles Problem enthalten.",
}

// Questions は質問の一覧を出題順に返します。
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = append([]string(nil), q.Options...)
		out[i] = q
	}
	return out
}

// LookupQuestion は ID から質問を探します。
func LookupQuestion(id string) (Question, bool) {
	for _, q := range questions {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Interpretations は用意された解釈文の一覧です。
func Interpretations() []string {
	return append([]string(nil), interpretations...)
}

// Interpret はシードから解釈文を1つ選びます。同じシードなら同じ文になります。
func Interpret(seed float64) string {
	return interpretations[utils.SeededIntn(seed, len(interpretations))]
}

// Result はクイズ1回分の結果です。
type Result struct {
	Description    string            `json:"description" yaml:"description"`
	Answers        map[string]string `json:"answers" yaml:"answers"`
	Interpretation string            `json:"interpretation" yaml:"interpretation"`
	Seed           float64           `json:"seed" yaml:"seed"`
	CompletedAt    time.Time         `json:"completed_at" yaml:"completed_at"`
}

// Quiz は回答中のクイズです。並行して使えます。
type Quiz struct {
	mu          sync.Mutex
	description string
	answers     map[string]string
}

// Start は夢の説明を受け取ってクイズを始めます。空白だけの説明は受け付けません。
func Start(description string) (*Quiz, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	return &Quiz{description: description, answers: make(map[string]string, len(questions))}, nil
}

// Description は入力された夢の説明です。
func (q *Quiz) Description() string {
	return q.description
}

// Answer は質問 ID に回答します。同じ質問に答え直すと上書きされます。
func (q *Quiz) Answer(questionID, option string) error {
	question, ok := LookupQuestion(questionID)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if !question.HasOption(option) {
		return fmt.Errorf("%w: %s=%q", ErrInvalidOption, questionID, option)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.answers[questionID] = option
	return nil
}

// Next は出題順で最初の未回答の質問を返します。全部答えていれば false です。
func (q *Quiz) Next() (Question, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for _, question := range Questions() {
		if _, done := q.answers[question.ID]; !done {
			return question, true
		}
	}
	return Question{}, false
}

// Progress は回答済みの数と質問の総数を返します。
func (q *Quiz) Progress() (answered, total int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.answers), len(questions)
}

// Complete は全問回答済みなら解釈を選んで結果を返します。
func (q *Quiz) Complete(seed float64, now time.Time) (Result, error) {
	if next, ok := q.Next(); ok {
		return Result{}, fmt.Errorf("%w: %s", ErrIncomplete, next.ID)
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	answers := make(map[string]string, len(q.answers))
	for k, v := range q.answers {
		answers[k] = v
	}
	return Result{
		Description:    q.description,
		Answers:        answers,
		Interpretation: Interpret(seed),
		Seed:           utils.SanitizeSeed(seed),
		CompletedAt:    now,
	}, nil
}
