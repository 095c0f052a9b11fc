package usecase

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linenotify/internal/domain/model"
)

func newTestNotification(notifier *fakeNotifier, logger *recordingLogger) *BuildNotification {
	store := staticStore{credentials: []model.Credential{{Name: "team", Token: "secret-token"}}}
	return NewBuildNotification(NewTokenRegistry(store, logger), notifier, logger)
}

func demoEvent(result, previous model.Result, sendType string, onChange bool, console *bytes.Buffer) model.BuildEvent {
	event := model.BuildEvent{
		Outcome: model.BuildOutcome{
			Result:      result,
			ProjectName: "demo",
			BuildNumber: 42,
			URL:         "https://ci.example/job/demo/",
			LogTail:     []string{"line1", "line2"},
		},
		PreviousResult: previous,
		Policy: model.PolicyConfig{
			SendType:             sendType,
			NotifyOnStatusChange: onChange,
			TokenName:            "team",
		},
	}
	if console != nil {
		event.Console = console
	}
	return event
}

func TestPerform_SendsOnMatchingResult(t *testing.T) {
	notifier := &fakeNotifier{result: model.DeliveryResult{ID: "d1", Succeeded: true, StatusCode: 200, ResponseBody: `{"status":200}`}}
	logger := &recordingLogger{}
	var console bytes.Buffer

	ok := newTestNotification(notifier, logger).Perform(context.Background(), demoEvent(model.ResultFailure, model.ResultSuccess, "ONLY_FAILURE", false, &console))

	assert.True(t, ok)
	require.Equal(t, 1, notifier.calls())
	assert.Equal(t, "secret-token", notifier.tokens[0])
	assert.Equal(t, "[demo][#42]Build result : FAILURE\n\nline1\nline2\n\nhttps://ci.example/job/demo/42", notifier.messages[0])
	assert.Contains(t, console.String(), "[LineNotifier][INFO]Sending build result.")
	assert.Contains(t, console.String(), `[LineNotifier]Response: {"status":200}`)
	assert.NotContains(t, console.String(), "secret-token")
}

func TestPerform_StatusChangeOverridesOnlyFailure(t *testing.T) {
	notifier := &fakeNotifier{result: model.DeliveryResult{Succeeded: true}}
	var console bytes.Buffer

	ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), demoEvent(model.ResultSuccess, model.ResultFailure, "ONLY_FAILURE", true, &console))

	assert.True(t, ok)
	assert.Equal(t, 1, notifier.calls())
	assert.Contains(t, console.String(), "[LineNotifier][INFO]Result changed (FAILURE > SUCCESS).")
}

func TestPerform_NoPreviousBuildSkips(t *testing.T) {
	notifier := &fakeNotifier{}
	var console bytes.Buffer

	ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), demoEvent(model.ResultSuccess, "", "ONLY_FAILURE", true, &console))

	assert.True(t, ok)
	assert.Zero(t, notifier.calls())
	assert.Contains(t, console.String(), "[LineNotifier][WARN]Previous build result does not exist.")
}

func TestPerform_SameResultSkipsQuietly(t *testing.T) {
	notifier := &fakeNotifier{}
	var console bytes.Buffer

	ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), demoEvent(model.ResultSuccess, model.ResultSuccess, "ONLY_FAILURE", true, &console))

	assert.True(t, ok)
	assert.Zero(t, notifier.calls())
	assert.Empty(t, console.String())
}

func TestPerform_UnknownSendTypeWarns(t *testing.T) {
	notifier := &fakeNotifier{}
	logger := &recordingLogger{}
	var console bytes.Buffer

	ok := newTestNotification(notifier, logger).Perform(context.Background(), demoEvent(model.ResultFailure, "", "BOGUS", true, &console))

	assert.True(t, ok)
	assert.Zero(t, notifier.calls())
	assert.Contains(t, console.String(), "[LineNotifier][WARN]Invalid send type: BOGUS")
	assert.Equal(t, 1, logger.count("warn"))
}

func TestPerform_MissingResultWarns(t *testing.T) {
	for _, result := range []model.Result{"", model.ResultUnknown} {
		notifier := &fakeNotifier{}
		var console bytes.Buffer

		ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), demoEvent(result, "", "ALWAYS", false, &console))

		assert.True(t, ok)
		assert.Zero(t, notifier.calls())
		assert.Contains(t, console.String(), "[LineNotifier][WARN]Build result is not available.")
	}
}

func TestPerform_UnknownTokenWarns(t *testing.T) {
	notifier := &fakeNotifier{}
	var console bytes.Buffer
	event := demoEvent(model.ResultFailure, "", "ALWAYS", false, &console)
	event.Policy.TokenName = "nobody"

	ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), event)

	assert.True(t, ok)
	assert.Zero(t, notifier.calls())
	assert.Contains(t, console.String(), "[LineNotifier][WARN]Token does not exist: current token name is nobody")
}

func TestPerform_DeliveryFailureStillContinues(t *testing.T) {
	notifier := &fakeNotifier{result: model.DeliveryResult{Succeeded: false, StatusCode: 401, ErrorMessage: "line notify returned status 401"}}
	logger := &recordingLogger{}
	var console bytes.Buffer

	ok := newTestNotification(notifier, logger).Perform(context.Background(), demoEvent(model.ResultFailure, "", "ALWAYS", false, &console))

	assert.True(t, ok)
	assert.Equal(t, 1, notifier.calls())
	assert.Contains(t, console.String(), "[LineNotifier][WARN]Send error: line notify returned status 401")
	assert.Equal(t, 1, logger.count("error"))
}

func TestPerform_NeverSendsNothing(t *testing.T) {
	notifier := &fakeNotifier{}

	ok := newTestNotification(notifier, &recordingLogger{}).Perform(context.Background(), demoEvent(model.ResultFailure, model.ResultFailure, "NEVER", true, nil))

	assert.True(t, ok)
	assert.Zero(t, notifier.calls())
}
