package fixtures

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/emersion/go-mbox"
	_ "github.com/emersion/go-message/charset"
	"github.com/emersion/go-message/mail"

	"github.com/tOgg1/flowstate/internal/logging"
	"github.com/tOgg1/flowstate/internal/models"
)

const snippetLimit = 140

// mboxMessage is one parsed message before threading.
type mboxMessage struct {
	id         string
	threadKey  string
	subject    string
	snippet    string
	from       models.Person
	to         []models.Person
	cc         []models.Person
	date       time.Time
	read       bool
	starred    bool
	labels     []string
	attachment bool
	priority   models.Priority
}

// ReadMboxFile reads an mbox archive and folds its messages into threads.
func ReadMboxFile(ctx context.Context, path string) ([]models.EmailThread, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open mbox %s: %w", path, err)
	}
	defer file.Close()

	threads, err := DecodeMbox(ctx, bufio.NewReader(file))
	if err != nil {
		return nil, fmt.Errorf("read mbox %s: %w", path, err)
	}
	return threads, nil
}

// DecodeMbox parses every message of an mbox stream. Messages that cannot be
// parsed are skipped and logged; a broken mbox envelope aborts the read.
func DecodeMbox(ctx context.Context, r io.Reader) ([]models.EmailThread, error) {
	logger := logging.FromContext(ctx)
	reader := mbox.NewReader(r)

	var messages []mboxMessage
	for index := 0; ; index++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		msgReader, err := reader.NextMessage()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("message %d: %w", index, err)
		}
		msg, err := parseMessage(msgReader)
		if err != nil {
			logger.Warn().Int("index", index).Err(err).Msg("skipping unparseable message")
			continue
		}
		logger.Debug().Str("message_id", msg.id).Str("from", logging.RedactAddress(msg.from.Email)).Msg("parsed message")
		messages = append(messages, msg)
	}
	return threadMessages(messages), nil
}

func parseMessage(r io.Reader) (mboxMessage, error) {
	mr, err := mail.CreateReader(r)
	if err != nil {
		return mboxMessage{}, err
	}
	defer mr.Close()

	header := mr.Header
	msg := mboxMessage{priority: models.PriorityNormal}

	if msg.id, err = header.MessageID(); err != nil {
		return mboxMessage{}, fmt.Errorf("message-id: %w", err)
	}
	if msg.subject, err = header.Subject(); err != nil {
		return mboxMessage{}, fmt.Errorf("subject: %w", err)
	}
	if msg.date, err = header.Date(); err != nil {
		return mboxMessage{}, fmt.Errorf("date: %w", err)
	}

	from, err := header.AddressList("From")
	if err != nil {
		return mboxMessage{}, fmt.Errorf("from: %w", err)
	}
	if len(from) > 0 {
		msg.from = addressPerson(from[0])
	}
	if msg.to, err = addressPeople(header, "To"); err != nil {
		return mboxMessage{}, fmt.Errorf("to: %w", err)
	}
	if msg.cc, err = addressPeople(header, "Cc"); err != nil {
		return mboxMessage{}, fmt.Errorf("cc: %w", err)
	}

	refs, _ := header.MsgIDList("References")
	inReplyTo, _ := header.MsgIDList("In-Reply-To")
	switch {
	case len(refs) > 0:
		msg.threadKey = refs[0]
	case len(inReplyTo) > 0:
		msg.threadKey = inReplyTo[0]
	default:
		msg.threadKey = msg.id
	}
	if msg.id == "" {
		msg.id = derivedID("mbox", msg.subject, msg.date.UTC().Format(time.RFC3339))
	}
	if msg.threadKey == "" {
		msg.threadKey = msg.id
	}

	msg.read = strings.Contains(header.Get("Status"), "R")
	msg.priority = headerPriority(header.Get("X-Priority"), header.Get("Importance"))
	for _, label := range strings.Split(header.Get("X-Gmail-Labels"), ",") {
		label = strings.TrimSpace(label)
		switch strings.ToLower(label) {
		case "":
		case "starred":
			msg.starred = true
		case "unread":
			msg.read = false
		case "important", "inbox", "opened", "sent":
		default:
			msg.labels = append(msg.labels, strings.ToLower(label))
		}
	}

	for {
		part, err := mr.NextPart()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return mboxMessage{}, fmt.Errorf("body: %w", err)
		}
		switch h := part.Header.(type) {
		case *mail.InlineHeader:
			contentType, _, _ := h.ContentType()
			if msg.snippet != "" || (contentType != "" && contentType != "text/plain") {
				continue
			}
			body, err := io.ReadAll(io.LimitReader(part.Body, 4096))
			if err != nil {
				return mboxMessage{}, fmt.Errorf("body: %w", err)
			}
			msg.snippet = Snippet(string(body), snippetLimit)
		case *mail.AttachmentHeader:
			msg.attachment = true
		}
	}
	return msg, nil
}

func addressPerson(addr *mail.Address) models.Person {
	return models.Person{
		ID:    derivedID("person", strings.ToLower(addr.Address)),
		Name:  addr.Name,
		Email: addr.Address,
	}
}

func addressPeople(header mail.Header, key string) ([]models.Person, error) {
	list, err := header.AddressList(key)
	if err != nil {
		return nil, err
	}
	people := make([]models.Person, 0, len(list))
	for _, addr := range list {
		people = append(people, addressPerson(addr))
	}
	return people, nil
}

// headerPriority maps X-Priority (1 highest) and Importance onto a thread
// priority. A parsable X-Priority is final; Importance only fills in when it
// is missing or garbled.
func headerPriority(xPriority, importance string) models.Priority {
	if fields := strings.Fields(xPriority); len(fields) > 0 {
		if n, err := strconv.Atoi(fields[0]); err == nil {
			switch {
			case n <= 1:
				return models.PriorityUrgent
			case n == 2:
				return models.PriorityHigh
			case n == 3:
				return models.PriorityNormal
			default:
				return models.PriorityLow
			}
		}
	}
	switch strings.ToLower(strings.TrimSpace(importance)) {
	case "high":
		return models.PriorityHigh
	case "low":
		return models.PriorityLow
	}
	return models.PriorityNormal
}

// threadMessages folds messages sharing a thread key. The newest message
// supplies the sender, timestamp and snippet; the oldest the subject.
func threadMessages(messages []mboxMessage) []models.EmailThread {
	order := make([]string, 0)
	byKey := make(map[string][]mboxMessage)
	for _, msg := range messages {
		if _, ok := byKey[msg.threadKey]; !ok {
			order = append(order, msg.threadKey)
		}
		byKey[msg.threadKey] = append(byKey[msg.threadKey], msg)
	}

	threads := make([]models.EmailThread, 0, len(order))
	for _, key := range order {
		msgs := byKey[key]
		sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].date.Before(msgs[j].date) })
		first, last := msgs[0], msgs[len(msgs)-1]

		thread := models.EmailThread{
			ID:         key,
			Subject:    first.subject,
			Snippet:    last.snippet,
			From:       last.from,
			To:         last.to,
			Cc:         last.cc,
			Timestamp:  last.date,
			IsRead:     true,
			Labels:     []string{},
			ReplyCount: len(msgs) - 1,
			Priority:   first.priority,
		}
		seen := make(map[string]bool)
		for _, msg := range msgs {
			thread.IsRead = thread.IsRead && msg.read
			thread.IsStarred = thread.IsStarred || msg.starred
			thread.HasAttachment = thread.HasAttachment || msg.attachment
			if priorityRank(msg.priority) > priorityRank(thread.Priority) {
				thread.Priority = msg.priority
			}
			for _, label := range msg.labels {
				if !seen[label] {
					seen[label] = true
					thread.Labels = append(thread.Labels, label)
				}
			}
		}
		threads = append(threads, thread)
	}
	return threads
}

func priorityRank(p models.Priority) int {
	switch p {
	case models.PriorityLow:
		return 0
	case models.PriorityHigh:
		return 2
	case models.PriorityUrgent:
		return 3
	default:
		return 1
	}
}

// Snippet collapses whitespace and truncates s to limit runes with an ellipsis.
func Snippet(s string, limit int) string {
	s = strings.Join(strings.Fields(s), " ")
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	runes := []rune(s)
	return strings.TrimSpace(string(runes[:limit-1])) + "…"
}
