package model

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Kind тип валидируемого поля
type Kind int

const (
	KindName Kind = iota + 1
	KindPhone
	KindEmail
	KindBirthday
	KindNoteName
	KindNoteBody
	KindTag
	KindStatus
)

func (k Kind) String() string {
	switch k {
	case KindName:
		return "name"
	case KindPhone:
		return "phone"
	case KindEmail:
		return "email"
	case KindBirthday:
		return "birthday"
	case KindNoteName:
		return "note name"
	case KindNoteBody:
		return "note"
	case KindTag:
		return "tag"
	case KindStatus:
		return "status"
	default:
		return "field"
	}
}

const (
	// MinNameLength минимальная длина имени контакта (в символах)
	MinNameLength = 2
	// MaxNoteNameLength максимальная длина имени заметки, длинные имена обрезаются
	MaxNoteNameLength = 30
	// MaxNoteBodyLength максимальная длина текста заметки, длинный текст обрезается
	MaxNoteBodyLength = 250

	// BirthdayLayout формат даты рождения
	BirthdayLayout = "2006-01-02"
)

var (
	phoneReplacer = strings.NewReplacer("(", "", ")", "", "-", "", " ", "")
	uaPhoneRe     = regexp.MustCompile(`^\+38\d{10}$`)
	digitsRe      = regexp.MustCompile(`^\d+$`)
	emailRe       = regexp.MustCompile(`^[\w]{1,}([\w.+-]{0,1}[\w]{1,}){0,}@[\w]{1,}([\w-]{0,1}[\w]{1,}){0,}([.][a-zA-Z]{2,}|[.][\w-]{2,}[.][a-zA-Z]{2,})$`)
)

// Value валидированное значение поля в канонической форме.
// Набор реализаций закрыт: Name, Phone, Email, Birthday, NoteName, NoteBody, Tag, Status.
type Value interface {
	Kind() Kind
	String() string

	field()
}

// Validate разбирает сырой ввод как поле указанного типа.
// Для KindBirthday ошибка не возвращается никогда: некорректная дата дает пустой Birthday.
func Validate(kind Kind, raw string) (Value, error) {
	switch kind {
	case KindName:
		return NewName(raw)
	case KindPhone:
		return NewPhone(raw)
	case KindEmail:
		return NewEmail(raw)
	case KindBirthday:
		return ParseBirthday(raw), nil
	case KindNoteName:
		return NewNoteName(raw)
	case KindNoteBody:
		return NewNoteBody(raw), nil
	case KindTag:
		return NewTag(raw)
	case KindStatus:
		return ParseStatus(raw)
	default:
		return nil, invalidf(kind, "unknown field kind %d", int(kind))
	}
}

// Name имя контакта, не короче MinNameLength символов
type Name string

// NewName валидирует имя контакта
func NewName(raw string) (Name, error) {
	name := strings.TrimSpace(raw)
	if utf8.RuneCountInString(name) < MinNameLength {
		return "", invalidf(KindName, "enter a name with at least %d symbols", MinNameLength)
	}
	return Name(name), nil
}

func (Name) Kind() Kind       { return KindName }
func (n Name) String() string { return string(n) }
func (Name) field()           {}

// Phone телефон в канонической форме +<код страны><номер>
type Phone string

// NewPhone нормализует телефон.
// После удаления символов "()- " принимается +38 и 10 цифр (13 символов),
// затем после удаления "+": 12 цифр получают префикс "+", 10 цифр получают префикс "+38".
func NewPhone(raw string) (Phone, error) {
	cleaned := phoneReplacer.Replace(strings.TrimSpace(raw))
	if len(cleaned) == 13 && uaPhoneRe.MatchString(cleaned) {
		return Phone(cleaned), nil
	}

	digits := strings.ReplaceAll(cleaned, "+", "")
	if !digitsRe.MatchString(digits) {
		return "", invalidf(KindPhone, "%q must contain only digits and ()-+ characters", raw)
	}

	switch len(digits) {
	case 12:
		return Phone("+" + digits), nil
	case 10:
		return Phone("+38" + digits), nil
	default:
		return "", invalidf(KindPhone, "%q has %d digits, expected 10 or 12", raw, len(digits))
	}
}

func (Phone) Kind() Kind       { return KindPhone }
func (p Phone) String() string { return string(p) }
func (Phone) field()           {}

// Email адрес электронной почты
type Email string

// NewEmail валидирует адрес, каноническое значение - обрезанный по краям ввод
func NewEmail(raw string) (Email, error) {
	email := strings.TrimSpace(raw)
	if !emailRe.MatchString(email) {
		return "", invalidf(KindEmail, "%q is not a valid email address", raw)
	}
	return Email(email), nil
}

func (Email) Kind() Kind       { return KindEmail }
func (e Email) String() string { return string(e) }
func (Email) field()           {}

// Birthday дата рождения. Нулевое значение означает, что дата неизвестна.
type Birthday struct {
	date time.Time
}

// ParseBirthday разбирает дату в формате YYYY-MM-DD.
// Некорректный ввод не является ошибкой и дает пустой Birthday.
func ParseBirthday(raw string) Birthday {
	t, err := time.Parse(BirthdayLayout, strings.TrimSpace(raw))
	if err != nil {
		return Birthday{}
	}
	return Birthday{date: t}
}

// IsZero сообщает, что дата рождения не задана
func (b Birthday) IsZero() bool { return b.date.IsZero() }

// Time возвращает дату рождения (UTC, полночь)
func (b Birthday) Time() time.Time { return b.date }

func (Birthday) Kind() Kind { return KindBirthday }

func (b Birthday) String() string {
	if b.IsZero() {
		return ""
	}
	return b.date.Format(BirthdayLayout)
}

func (Birthday) field() {}

// NoteName имя заметки, обрезается до MaxNoteNameLength символов
type NoteName string

// NewNoteName нормализует имя заметки. Пустое имя недопустимо.
func NewNoteName(raw string) (NoteName, error) {
	if strings.TrimSpace(raw) == "" {
		return "", invalidf(KindNoteName, "note name cannot be empty")
	}
	return NoteName(truncate(raw, MaxNoteNameLength)), nil
}

func (NoteName) Kind() Kind       { return KindNoteName }
func (n NoteName) String() string { return string(n) }
func (NoteName) field()           {}

// NoteBody текст заметки, обрезается до MaxNoteBodyLength символов
type NoteBody string

// NewNoteBody нормализует текст заметки
func NewNoteBody(raw string) NoteBody {
	return NoteBody(truncate(raw, MaxNoteBodyLength))
}

func (NoteBody) Kind() Kind       { return KindNoteBody }
func (b NoteBody) String() string { return string(b) }
func (NoteBody) field()           {}

// Tag тег заметки
type Tag string

// NewTag валидирует тег: произвольная непустая строка
func NewTag(raw string) (Tag, error) {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return "", invalidf(KindTag, "tag cannot be empty")
	}
	return Tag(tag), nil
}

func (Tag) Kind() Kind       { return KindTag }
func (t Tag) String() string { return string(t) }
func (Tag) field()           {}

// Status статус заметки
type Status string

const (
	StatusInProgress Status = "in progress"
	StatusDone       Status = "done"
)

// ParseStatus разбирает статус без учета регистра, пустой ввод дает StatusInProgress
func ParseStatus(raw string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(raw))) {
	case "", StatusInProgress:
		return StatusInProgress, nil
	case StatusDone:
		return StatusDone, nil
	default:
		return "", invalidf(KindStatus, "%q must be one of %q, %q", raw, StatusInProgress, StatusDone)
	}
}

func (Status) Kind() Kind       { return KindStatus }
func (s Status) String() string { return string(s) }
func (Status) field()           {}

func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
