package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrCancelled возвращается, когда пользователь ввел cancel в любом запросе
var ErrCancelled = errors.New("cancelled")

const cancelWord = "cancel"

// Prompter читает ответы пользователя построчно и пишет приглашения в out
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter создает Prompter поверх произвольных потоков ввода и вывода
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Line печатает приглашение и возвращает следующую строку без пробелов по краям.
// При исчерпании ввода возвращает io.EOF.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Ask работает как Line, но ввод cancel прерывает команду через ErrCancelled
func (p *Prompter) Ask(prompt string) (string, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return "", err
	}
	if strings.EqualFold(line, cancelWord) {
		return "", ErrCancelled
	}
	return line, nil
}

// Confirm задает вопрос да/нет и переспрашивает до корректного ответа
func (p *Prompter) Confirm(question string) (bool, error) {
	for {
		answer, err := p.Ask(question + " (y/n) ")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		p.Println("Wrong command")
	}
}

// Printf пишет форматированный текст пользователю
func (p *Prompter) Printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

// Println пишет строку пользователю
func (p *Prompter) Println(args ...any) {
	fmt.Fprintln(p.out, args...)
}

// Writer возвращает поток вывода для табличного форматирования
func (p *Prompter) Writer() io.Writer {
	return p.out
}
