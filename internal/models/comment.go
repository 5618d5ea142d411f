// Package models содержит доменные сущности comments-api.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Comment — комментарий пользователя к посту.
// Важно:
//   - ID назначает хранилище, после создания не меняется;
//   - UserID/PostID — непрозрачные ссылки на смежные сущности, неизменяемы;
//   - Body — единственное изменяемое поле.
type Comment struct {
	ID     int64  `json:"id"`
	UserID Ref    `json:"userId"`
	PostID Ref    `json:"postId"`
	Body   string `json:"body"`
}

// Filter — условия выборки. Пустое поле означает «без фильтра».
type Filter struct {
	UserID Ref
	PostID Ref
}

// Match сообщает, проходит ли комментарий под фильтр.
func (f Filter) Match(c Comment) bool {
	if !f.UserID.IsZero() && c.UserID != f.UserID {
		return false
	}

	if !f.PostID.IsZero() && c.PostID != f.PostID {
		return false
	}

	return true
}

// Ref — непрозрачный идентификатор пользователя или поста.
// На входе принимается JSON-строка или JSON-число, хранится каноническая
// строковая форма: 7 и "7" — один и тот же Ref.
// «Ложные» значения (null, "", 0, false) дают пустой Ref.
type Ref string

// IsZero — признак отсутствующей ссылки.
func (r Ref) IsZero() bool { return r == "" }

func (r Ref) String() string { return string(r) }

// UnmarshalJSON разбирает строку, число, bool или null.
func (r *Ref) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) == 0 || bytes.Equal(data, []byte("null")) || bytes.Equal(data, []byte("false")) {
		*r = ""
		return nil
	}

	if bytes.Equal(data, []byte("true")) {
		*r = "true"
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*r = Ref(s)
		return nil
	case '{', '[':
		return fmt.Errorf("ref: unsupported json value %s", data)
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("ref: %w", err)
	}

	*r = refFromNumber(n)
	return nil
}

// refFromNumber приводит число к канонической строке; 0 считается отсутствием.
func refFromNumber(n json.Number) Ref {
	if i, err := n.Int64(); err == nil {
		if i == 0 {
			return ""
		}

		return Ref(strconv.FormatInt(i, 10))
	}

	f, err := n.Float64()
	if err != nil {
		return Ref(n.String())
	}

	if f == 0 {
		return ""
	}

	return Ref(strconv.FormatFloat(f, 'f', -1, 64))
}
