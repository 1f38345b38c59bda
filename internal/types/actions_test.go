package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemActions_Encode(t *testing.T) {
	t.Parallel()
	cases := []struct {
		action ItemAction
		name   string
	}{
		{Archive(7), ActionArchive},
		{Readd(7), ActionReadd},
		{Favorite(7), ActionFavorite},
		{Unfavorite(7), ActionUnfavorite},
		{Delete(7), ActionDelete},
		{TagsClear(7), ActionTagsClear},
	}
	for _, c := range cases {
		assert.Equal(t, c.name, c.action.Name())
		b, err := json.Marshal(c.action)
		require.NoError(t, err)
		assert.JSONEq(t, `{"action":"`+c.name+`","item_id":7}`, string(b))

		b, err = json.Marshal(c.action.At(1500))
		require.NoError(t, err)
		assert.JSONEq(t, `{"action":"`+c.name+`","item_id":7,"time":1500}`, string(b))
	}
}

func TestItemAction_AtReturnsCopy(t *testing.T) {
	t.Parallel()
	a := Archive(1)
	_ = a.At(99)
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"archive","item_id":1}`, string(b))
}

func TestAddAction_ItemIDAbsentVersusZero(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(NewAdd())
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"add"}`, string(b))

	b, err = json.Marshal(NewAdd().WithItemID(0))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"add","item_id":0}`, string(b))
}

func TestAddAction_AllFields(t *testing.T) {
	t.Parallel()
	a := NewAdd().
		WithItemID(12).
		WithRefID("tw-1").
		WithTags("a,b").
		WithTitle("T").
		WithURL("http://example.com").
		At(77)
	b, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"add","item_id":12,"ref_id":"tw-1","tags":"a,b","time":77,"title":"T","url":"http://example.com"}`, string(b))
}

func TestTagActions_Encode(t *testing.T) {
	t.Parallel()
	b, err := json.Marshal(TagsAdd(5, "go,rust"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"tags_add","item_id":5,"tags":"go,rust"}`, string(b))

	b, err = json.Marshal(TagsReplace(5, "go").At(3))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"tags_replace","item_id":5,"tags":"go","time":3}`, string(b))

	b, err = json.Marshal(TagRename(5, "old", "new"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"action":"tag_rename","item_id":5,"old_tag":"old","new_tag":"new"}`, string(b))
}

func TestSendRequest_KeepsOrderAndHeterogeneity(t *testing.T) {
	t.Parallel()
	req := SendRequest{
		Credentials: testCreds,
		Actions:     []Action{Archive(1), NewAdd().WithURL("http://x"), TagRename(2, "a", "b")},
	}
	b, err := json.Marshal(req)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"consumer_key":"ck","access_token":"tok",
		"actions":[
			{"action":"archive","item_id":1},
			{"action":"add","url":"http://x"},
			{"action":"tag_rename","item_id":2,"old_tag":"a","new_tag":"b"}
		]
	}`, string(b))

	b, err = json.Marshal(SendRequest{Credentials: testCreds})
	require.NoError(t, err)
	assert.JSONEq(t, `{"consumer_key":"ck","access_token":"tok","actions":[]}`, string(b))
}
