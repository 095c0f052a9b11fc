package kafka

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"linenotify/internal/domain/model"
)

type staticPolicies map[string]model.PolicyConfig

func (s staticPolicies) PolicyFor(project string) model.PolicyConfig { return s[project] }

func TestDecodeEvent_UsesConfiguredPolicy(t *testing.T) {
	policies := staticPolicies{"demo": {SendType: "ONLY_FAILURE", NotifyOnStatusChange: true, TokenName: "team"}}
	data := []byte(`{"project":"demo","number":42,"result":"FAILURE","previousResult":"SUCCESS",
		"url":"https://ci.example/job/demo/","logTail":["a","b","c"]}`)

	event, err := DecodeEvent(data, policies, 2)
	require.NoError(t, err)

	assert.Equal(t, model.BuildOutcome{
		Result:      model.ResultFailure,
		ProjectName: "demo",
		BuildNumber: 42,
		URL:         "https://ci.example/job/demo/",
		LogTail:     []string{"b", "c"},
	}, event.Outcome)
	assert.Equal(t, model.ResultSuccess, event.PreviousResult)
	assert.Equal(t, policies["demo"], event.Policy)
	assert.Nil(t, event.Console)
}

func TestDecodeEvent_InlinePolicyWins(t *testing.T) {
	data := []byte(`{"project":"demo","number":1,"result":"SUCCESS",
		"policy":{"sendType":"ALWAYS","tokenName":"other"}}`)

	event, err := DecodeEvent(data, staticPolicies{"demo": {SendType: "NEVER"}}, 10)
	require.NoError(t, err)
	assert.Equal(t, "ALWAYS", event.Policy.SendType)
	assert.Equal(t, "other", event.Policy.TokenName)
	assert.Equal(t, model.Result(""), event.PreviousResult)
}

func TestDecodeEvent_Rejects(t *testing.T) {
	_, err := DecodeEvent([]byte(`not json`), nil, 10)
	assert.Error(t, err)

	_, err = DecodeEvent([]byte(`{"number":1}`), nil, 10)
	assert.Error(t, err)
}

func TestNewConsumer_RequiresBrokers(t *testing.T) {
	_, err := NewConsumer(nil, "builds", "linenotify", nil, nil, 10, nil)
	assert.Error(t, err)
}
