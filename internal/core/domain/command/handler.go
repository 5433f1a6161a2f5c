package command

import (
	"context"
	"fmt"
	"strings"
	"tunebot/internal/core/domain"
	"tunebot/internal/core/port"
)

// Handler is the contract every command implements. Handlers hold no shared
// state with each other; one value may be registered under many keys.
type Handler interface {
	// Name is the canonical command name. It is matched case-insensitively.
	Name() string
	// Aliases are alternative names resolving to the same handler.
	Aliases() []string
	// Invoke runs the command. User input problems are answered with a reply
	// and do not produce an error.
	Invoke(ctx context.Context, inv *Invocation) error
	// Help returns the usage text of the command for the given invocation.
	Help(inv *Invocation) string
	// MinimumPermission is the lowest level allowed to invoke the command.
	MinimumPermission() domain.PermissionLevel
}

// Invocation is the context of one command call.
type Invocation struct {
	Message *domain.Message
	// Trigger is the lower-cased name or alias the command was called with.
	Trigger string
	Args    []string
	Prefix  string

	sender     port.TextSender
	translator port.Translator
}

func NewInvocation(message *domain.Message, prefix string, sender port.TextSender,
	translator port.Translator) *Invocation {
	return &Invocation{
		Message:    message,
		Trigger:    ParseCommand(message.Text, prefix),
		Args:       ParseCommandArgs(message.Text),
		Prefix:     prefix,
		sender:     sender,
		translator: translator,
	}
}

func (i *Invocation) HasArguments() bool {
	return len(i.Args) > 0
}

// Reply answers the invoking message.
func (i *Invocation) Reply(ctx context.Context, text string) error {
	_, err := i.sender.SendMessageReply(ctx, i.Message, text)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}

// ReplyWithName answers the invoking message, addressing the caller by name.
func (i *Invocation) ReplyWithName(ctx context.Context, text string) error {
	if i.Message.Username == "" {
		return i.Reply(ctx, text)
	}

	return i.Reply(ctx, i.Message.Username+": "+text)
}

// T translates key with args in the invocation's locale.
func (i *Invocation) T(key string, args ...any) string {
	if i.translator == nil {
		return key
	}

	return i.translator.Translate(key, args...)
}

// Usage renders "<prefix><trigger> <args>".
func (i *Invocation) Usage(args string) string {
	usage := i.Prefix + i.Trigger
	if args != "" {
		usage += " " + args
	}

	return usage
}

// SendHelp replies with the formatted help of h.
func SendHelp(ctx context.Context, inv *Invocation, h Handler) error {
	return inv.Reply(ctx, FormatHelp(inv, h))
}

func FormatHelp(inv *Invocation, h Handler) string {
	sb := &strings.Builder{}
	sb.WriteString(inv.T("helpProperUsage"))
	sb.WriteString("\n")
	sb.WriteString(h.Help(inv))

	if aliases := h.Aliases(); len(aliases) > 0 {
		sb.WriteString("\n")
		sb.WriteString(inv.T("helpAliases", strings.Join(aliases, ", ")))
	}

	return sb.String()
}

// ParseCommand returns the lower-cased command word of text without prefix
// and without a trailing "@botname" mention.
func ParseCommand(text, prefix string) string {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return ""
	}

	command := strings.TrimPrefix(fields[0], prefix)
	if at := strings.IndexByte(command, '@'); at >= 0 {
		command = command[:at]
	}

	return strings.ToLower(command)
}

// ParseCommandArgs returns every word of text after the command word.
func ParseCommandArgs(text string) []string {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return nil
	}

	return fields[1:]
}

// WithTrigger returns a copy of i addressed to another command key, used to
// render the help of a command other than the invoked one.
func (i *Invocation) WithTrigger(trigger string) *Invocation {
	c := *i
	c.Trigger = strings.ToLower(strings.TrimPrefix(trigger, i.Prefix))
	c.Args = nil

	return &c
}
