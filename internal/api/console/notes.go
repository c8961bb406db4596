package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assistant-bot/internal/model"
	svc "assistant-bot/internal/service"
)

func (c *Console) noteMenu() *menu {
	m := &menu{
		title:    "notes",
		prompt:   ">>> ",
		exit:     []string{"back", "good bye", "close", "exit"},
		farewell: "Good bye",
		commands: []command{
			{name: "hello", help: "greeting", run: c.hello},
			{name: "add", help: "Adds a note to the notebook.", run: c.addNote},
			{name: "search", help: "Searches for notes in the notebook by the following fields: name / tag / status.", run: c.searchNotes},
			{name: "change", help: "Changes the information in the note: name / note / tag / status.", run: c.changeNote},
			{name: "shownote", help: "Show note which the user want to see.", run: c.showNote},
			{name: "show", help: "Show all notes.", run: c.showNotes},
			{name: "del", help: "Deleting a note, or deleting completed notes.", run: c.deleteNotes},
		},
	}
	m.commands = append(m.commands, command{name: "help", aliases: []string{"?"}, help: "show this help", run: c.helpFor(m)})
	return m
}

func (c *Console) hello(context.Context, *Prompter) (string, error) {
	return "How can I help you?", nil
}

func (c *Console) addNote(ctx context.Context, p *Prompter) (string, error) {
	var (
		name      string
		overwrite bool
	)
	for {
		raw, err := p.Ask("Enter a name to your record: ")
		if err != nil {
			return "", err
		}
		noteName, err := model.NewNoteName(raw)
		if err != nil {
			p.Println("Note name cannot be empty!")
			continue
		}
		name = noteName.String()
		if !c.notes.Exists(ctx, name) {
			break
		}
		rewrite, err := p.Confirm("You have already such note, do you want to rewrite it?")
		if err != nil {
			return "", err
		}
		if rewrite {
			overwrite = true
			break
		}
	}

	text, err := p.Ask(fmt.Sprintf("Type %s's note: ", name))
	if err != nil {
		return "", err
	}
	tag, err := p.Ask(fmt.Sprintf("Type %s's tag: ", name))
	if err != nil {
		return "", err
	}

	if _, err := c.notes.Create(ctx, name, text, tag, overwrite); err != nil {
		return "", err
	}
	return fmt.Sprintf("Note %s has been added", name), nil
}

func (c *Console) searchNotes(ctx context.Context, p *Prompter) (string, error) {
	for {
		field, err := p.Ask("Choose what you want to find (name / tag / status / cancel): ")
		if err != nil {
			return "", err
		}
		switch svc.NoteSearchField(strings.ToLower(field)) {
		case svc.SearchByName, svc.SearchByTag, svc.SearchByStatus:
		default:
			p.Println("Wrong command")
			continue
		}

		query, err := p.Ask("What you want to find: ")
		if err != nil {
			return "", err
		}
		notes, err := c.notes.Search(ctx, svc.NoteSearchField(field), query)
		if err != nil {
			return "", err
		}
		if len(notes) == 0 {
			return "Nothing matches the result", nil
		}
		writeNotesTable(p.Writer(), notes, 0)
		return "", nil
	}
}

func (c *Console) changeNote(ctx context.Context, p *Prompter) (string, error) {
	name, err := p.Ask("Which note do you want to change? ")
	if err != nil {
		return "", err
	}
	if _, err := c.notes.Get(ctx, name); errors.Is(err, model.ErrNotFound) {
		return fmt.Sprintf("%s didn't exist", name), nil
	} else if err != nil {
		return "", err
	}

	for {
		item, err := p.Ask(fmt.Sprintf("What do you want to change at %s's records: (name / note / tag / status)? ", name))
		if err != nil {
			return "", err
		}
		switch strings.ToLower(item) {
		case "name":
			newName, err := p.Ask(fmt.Sprintf("Type a new name for note %s: ", name))
			if err != nil {
				return "", err
			}
			if err := c.notes.ChangeName(ctx, name, newName); err != nil {
				return "", err
			}
			return fmt.Sprintf("Name for note %s changed to %s", name, newName), nil
		case "note":
			text, err := p.Ask(fmt.Sprintf("Type a new text for note %s: ", name))
			if err != nil {
				return "", err
			}
			if err := c.notes.ChangeNote(ctx, name, text); err != nil {
				return "", err
			}
			return fmt.Sprintf("Text for note %s changed.", name), nil
		case "tag":
			return c.changeTags(ctx, p, name)
		case "status":
			status, err := p.Ask(fmt.Sprintf("Type a new status for note %s: (Done / In progress)? ", name))
			if err != nil {
				return "", err
			}
			if err := c.notes.ChangeStatus(ctx, name, status); err != nil {
				return "", err
			}
			return fmt.Sprintf("Status for note %s changed to %s", name, strings.ToLower(status)), nil
		}

		again, err := p.Confirm("You have such options: (name / note / tag / status). Would you like to try one more time?")
		if err != nil {
			return "", err
		}
		if !again {
			return "Changing has been canceled", nil
		}
	}
}

func (c *Console) changeTags(ctx context.Context, p *Prompter, name string) (string, error) {
	for {
		option, err := p.Ask("Choose option: add (add one more tag) / change (replace tag to another) / del (del tag): ")
		if err != nil {
			return "", err
		}
		switch strings.ToLower(option) {
		case "add":
			tag, err := p.Ask(fmt.Sprintf("Type a new tag for note %s: ", name))
			if err != nil {
				return "", err
			}
			if err := c.notes.AddTag(ctx, name, tag); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tag %s has been added", strings.TrimSpace(tag)), nil
		case "change":
			oldTag, err := p.Ask("Type tag you want to change: ")
			if err != nil {
				return "", err
			}
			if err := c.requireTag(ctx, name, oldTag); err != nil {
				return "", err
			}
			newTag, err := p.Ask("Type a new tag: ")
			if err != nil {
				return "", err
			}
			if err := c.notes.ChangeTag(ctx, name, oldTag, newTag); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tag %s has been changed to %s", oldTag, strings.TrimSpace(newTag)), nil
		case "del", "dell":
			tag, err := p.Ask("Please type a tag you want to delete ")
			if err != nil {
				return "", err
			}
			if err := c.notes.DeleteTag(ctx, name, tag); err != nil {
				return "", err
			}
			return fmt.Sprintf("Tag %s has been deleted", tag), nil
		}
		p.Println("Wrong command")
	}
}

// requireTag проверяет наличие тега до запроса нового значения
func (c *Console) requireTag(ctx context.Context, name, tag string) error {
	tags, err := c.notes.Tags(ctx, name)
	if err != nil {
		return err
	}
	for _, t := range tags {
		if t.String() == strings.TrimSpace(tag) {
			return nil
		}
	}
	return model.NotFound("tag", tag)
}

func (c *Console) showNote(ctx context.Context, p *Prompter) (string, error) {
	name, err := p.Ask("Which note do you want to see? ")
	if err != nil {
		return "", err
	}
	note, err := c.notes.Get(ctx, name)
	if errors.Is(err, model.ErrNotFound) {
		return "Nothing match", nil
	}
	if err != nil {
		return "", err
	}
	return note.String(), nil
}

func (c *Console) showNotes(ctx context.Context, p *Prompter) (string, error) {
	notes := c.notes.List(ctx)
	if len(notes) == 0 {
		return "Notebook is empty.", nil
	}
	err := showPaged(p, notes, c.options.PageSize, func(page []*model.RecordNote, offset int) {
		writeNotesTable(p.Writer(), page, offset)
	})
	return "", err
}

func (c *Console) deleteNotes(ctx context.Context, p *Prompter) (string, error) {
	single, err := p.Confirm("Do you want to delete one note?")
	if err != nil {
		return "", err
	}
	if single {
		name, err := p.Ask("Which note do you want to delete? ")
		if err != nil {
			return "", err
		}
		if err := c.notes.Delete(ctx, name); err != nil {
			return "", err
		}
		return fmt.Sprintf("Note %s has been deleted", name), nil
	}

	done, err := p.Confirm("Do you want to delete all completed notes?")
	if err != nil {
		return "", err
	}
	if !done {
		return "You have canceled deleting", nil
	}
	removed := c.notes.DeleteDone(ctx)
	return fmt.Sprintf("%d notes with status 'done' have been deleted", removed), nil
}
