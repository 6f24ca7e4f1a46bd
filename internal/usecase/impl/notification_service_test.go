package impl

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"staradmin/internal/domain/entity"
	"staradmin/internal/domain/service"
	"staradmin/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportActivityCSV(t *testing.T) {
	activity := store.NewActivityLog()
	activity.Record("Mahsulot qo'shildi", "Boss", "Palto", entity.ActivityOK, "box")
	activity.Record("Kupon o'chirildi", "Boss", "SALE10", entity.ActivityOK, "tag")
	srv := NewNotificationService(testNotifier(), activity)

	var buf bytes.Buffer
	require.NoError(t, srv.ExportActivityCSV(&buf))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "id,action,user,target,timestamp,status", lines[0])
	assert.Contains(t, lines[1], "Kupon o'chirildi", "newest entry first")
	assert.Contains(t, lines[2], "Mahsulot qo'shildi")
}

func TestNotificationService_Passthrough(t *testing.T) {
	notifier := testNotifier()
	srv := NewNotificationService(notifier, store.NewActivityLog())

	pushed := notifier.Push(entity.NotifyInfo, "", "xabar")
	assert.Equal(t, 1, srv.UnreadCount())

	srv.MarkRead(pushed.ID)
	assert.Zero(t, srv.UnreadCount())

	srv.DismissToast(pushed.ID)
	assert.Empty(t, srv.Toasts())

	srv.ClearInbox()
	assert.Empty(t, srv.Inbox())
}

type scriptedAssistant struct{ reply service.AssistantReply }

func (s scriptedAssistant) Reply(_ context.Context, _ string) service.AssistantReply {
	return s.reply
}

func TestAssistant_HistoryGrowsInPairs(t *testing.T) {
	srv := NewAssistantService(scriptedAssistant{reply: service.AssistantReply{Text: "Javob"}})

	answer, err := srv.Ask(context.Background(), "Savol?")
	require.NoError(t, err)
	assert.Equal(t, "Javob", answer.Text)

	history := srv.History()
	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "assistant", history[1].Role)

	srv.Reset()
	assert.Empty(t, srv.History())
}

func TestAssistant_RejectsEmptyMessage(t *testing.T) {
	srv := NewAssistantService(scriptedAssistant{})

	_, err := srv.Ask(context.Background(), "   ")
	assert.Error(t, err)
	assert.Empty(t, srv.History())
}
