package console

import (
	"context"
	"fmt"
	"strconv"

	"assistant-bot/internal/model"
)

func (c *Console) contactMenu() *menu {
	m := &menu{
		title:    "contacts",
		prompt:   `Input command or "?" for help: > `,
		exit:     []string{"exit", "end"},
		farewell: "Bye-Bye!",
		commands: []command{
			{name: "add_contact", help: "adding contact to book", run: c.addContact},
			{name: "del_contact", help: "remove contact from book", run: c.deleteContact},
			{name: "rename_contact", help: "change contact name", run: c.renameContact},
			{name: "add_address", help: "adding address to contact", run: c.addAddress},
			{name: "add_birthday", help: "adding birthday to contact", run: c.addBirthday},
			{name: "add_email", help: "adding email to contact", run: c.addEmail},
			{name: "edit_email", help: "edit email", run: c.editEmail},
			{name: "remove_email", help: "remove email from contact", run: c.removeEmail},
			{name: "add_phone", help: "adding phone number to contact", run: c.addPhone},
			{name: "edit_phone", help: "edit phone number", run: c.editPhone},
			{name: "remove_phone", help: "remove phone number from contact", run: c.removePhone},
			{name: "find_record", help: "search contact by symbols", run: c.findRecord},
			{name: "days_to_birthday", help: "days left to contact birthday", run: c.daysToBirthday},
			{name: "show_birthdays", help: "show upcoming birthdays in book", run: c.showBirthdays},
			{name: "show_book", help: "show all contacts in book", run: c.showBook},
			{name: "notes", help: "case of notes", run: c.openNotes},
		},
	}
	m.commands = append(m.commands, command{name: "?", aliases: []string{"help"}, help: "show this help", run: c.helpFor(m)})
	return m
}

// askContact запрашивает имя и возвращает существующий контакт
func (c *Console) askContact(ctx context.Context, p *Prompter) (*model.Record, error) {
	name, err := p.Ask("Input contact name: ")
	if err != nil {
		return nil, err
	}
	return c.contacts.Get(ctx, name)
}

func (c *Console) addContact(ctx context.Context, p *Prompter) (string, error) {
	name, err := p.Ask("Input name for contact: ")
	if err != nil {
		return "", err
	}
	if _, err := model.NewName(name); err != nil {
		return "", err
	}

	input := model.ContactInput{Name: name}
	phone, err := p.Ask("Input phone number (Enter to skip): ")
	if err != nil {
		return "", err
	}
	if phone != "" {
		input.Phones = []string{phone}
	}
	email, err := p.Ask("Input email (Enter to skip): ")
	if err != nil {
		return "", err
	}
	if email != "" {
		input.Emails = []string{email}
	}
	if input.Birthday, err = p.Ask("Input birthday in format [yyyy-mm-dd] (Enter to skip): "); err != nil {
		return "", err
	}

	record, err := c.contacts.Create(ctx, input)
	if err != nil {
		return "", err
	}
	if input.Birthday != "" && record.Birthday().IsZero() {
		return fmt.Sprintf("Contact %s saved. Birthday %q not recognized and skipped.", record.Name(), input.Birthday), nil
	}
	return fmt.Sprintf("Contact %s saved.", record.Name()), nil
}

func (c *Console) deleteContact(ctx context.Context, p *Prompter) (string, error) {
	name, err := p.Ask("Input name for contact: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.Delete(ctx, name); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s deleted.", name), nil
}

func (c *Console) renameContact(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	newName, err := p.Ask("Input new name: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.Rename(ctx, record.Name().String(), newName); err != nil {
		return "", err
	}
	return fmt.Sprintf("Contact %s renamed to %s.", record.Name(), newName), nil
}

func (c *Console) addAddress(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	address, err := p.Ask("Input address: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.SetAddress(ctx, record.Name().String(), address); err != nil {
		return "", err
	}
	return "Result: OK", nil
}

func (c *Console) addBirthday(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	birthday, err := p.Ask("Input birthday in format yyyy-mm-dd: ")
	if err != nil {
		return "", err
	}
	ok, err := c.contacts.SetBirthday(ctx, record.Name().String(), birthday)
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Birthday %q not recognized, birthday cleared.", birthday), nil
	}
	return "Result: OK", nil
}

func (c *Console) addEmail(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	raw, err := p.Ask("Input email: ")
	if err != nil {
		return "", err
	}
	email, err := c.contacts.AddEmail(ctx, record.Name().String(), raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("E-mail %s added.", email), nil
}

func (c *Console) editEmail(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	oldEmail, err := p.Ask("Input old email: ")
	if err != nil {
		return "", err
	}
	newEmail, err := p.Ask("Input new email: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.EditEmail(ctx, record.Name().String(), oldEmail, newEmail); err != nil {
		return "", err
	}
	return "Result: OK", nil
}

func (c *Console) removeEmail(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	email, err := p.Ask("Input email: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.RemoveEmail(ctx, record.Name().String(), email); err != nil {
		return "", err
	}
	return fmt.Sprintf("E-mail %s removed.", email), nil
}

func (c *Console) addPhone(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	raw, err := p.Ask("Input phone number: ")
	if err != nil {
		return "", err
	}
	phone, err := c.contacts.AddPhone(ctx, record.Name().String(), raw)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s added.", phone), nil
}

func (c *Console) editPhone(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	oldPhone, err := p.Ask("Input old phone number: ")
	if err != nil {
		return "", err
	}
	newPhone, err := p.Ask("Input new phone number: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.EditPhone(ctx, record.Name().String(), oldPhone, newPhone); err != nil {
		return "", err
	}
	return "Result: OK", nil
}

func (c *Console) removePhone(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	phone, err := p.Ask("Input phone number: ")
	if err != nil {
		return "", err
	}
	if err := c.contacts.RemovePhone(ctx, record.Name().String(), phone); err != nil {
		return "", err
	}
	return fmt.Sprintf("Phone %s removed.", phone), nil
}

func (c *Console) findRecord(ctx context.Context, p *Prompter) (string, error) {
	part, err := p.Ask("Input symbols to search: ")
	if err != nil {
		return "", err
	}
	if part == "" {
		return "Nothing to search.", nil
	}

	records := c.contacts.Search(ctx, part)
	if len(records) == 0 {
		return "No match found.", nil
	}
	p.Printf("-----Search by [%s]--------\n", part)
	for _, record := range records {
		p.Println(record)
		p.Println()
	}
	return "", nil
}

func (c *Console) daysToBirthday(ctx context.Context, p *Prompter) (string, error) {
	record, err := c.askContact(ctx, p)
	if err != nil {
		return "", err
	}
	days, ok, err := c.contacts.DaysToBirthday(ctx, record.Name().String())
	if err != nil {
		return "", err
	}
	if !ok {
		return fmt.Sprintf("Contact %s has no birthday.", record.Name()), nil
	}
	return fmt.Sprintf("%d days to %s's birthday.", days, record.Name()), nil
}

func (c *Console) showBirthdays(ctx context.Context, p *Prompter) (string, error) {
	raw, err := p.Ask(fmt.Sprintf("Input max days to birthdays [%d]: ", c.options.BirthdayWindowDays))
	if err != nil {
		return "", err
	}
	days := c.options.BirthdayWindowDays
	if raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days < 0 {
			return "Incorrect value of days count", nil
		}
	}

	records := c.contacts.UpcomingBirthdays(ctx, days)
	if len(records) == 0 {
		return "No birthdays in this period.", nil
	}
	for _, record := range records {
		left, _, err := c.contacts.DaysToBirthday(ctx, record.Name().String())
		if err != nil {
			return "", err
		}
		p.Printf("%s: %s (in %d days)\n", record.Name(), record.Birthday(), left)
	}
	return "", nil
}

func (c *Console) showBook(ctx context.Context, p *Prompter) (string, error) {
	records := c.contacts.List(ctx)
	if len(records) == 0 {
		return "Address book is empty.", nil
	}
	err := showPaged(p, records, c.options.PageSize, func(page []*model.Record, _ int) {
		for _, record := range page {
			p.Println(record)
			p.Println()
		}
	})
	return "", err
}

func (c *Console) openNotes(ctx context.Context, p *Prompter) (string, error) {
	p.Println("Hello. If you need help, write 'help'")
	return "", c.serve(ctx, c.noteMenu())
}
