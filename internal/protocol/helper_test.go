package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_EncodeDecode(t *testing.T) {
	t.Parallel()

	msg, err := NewMessage(MsgJoinRoom, JoinRoomPayload{RoomNumber: "123456", Password: "pw"})
	require.NoError(t, err)

	data, err := msg.Encode()
	require.NoError(t, err)

	decoded, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, MsgJoinRoom, decoded.Type)

	payload, err := ParsePayload[JoinRoomPayload](decoded)
	require.NoError(t, err)
	assert.Equal(t, "123456", payload.RoomNumber)
	assert.Equal(t, "pw", payload.Password)
}

func TestDecode_Invalid(t *testing.T) {
	t.Parallel()

	_, err := Decode([]byte("{not json"))
	assert.Error(t, err)
}

func TestNewErrorMessage(t *testing.T) {
	t.Parallel()

	msg := NewErrorMessage(ErrCodeRoomFull)
	payload, err := ParsePayload[ErrorPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, ErrCodeRoomFull, payload.Code)
	assert.Equal(t, ErrorMessages[ErrCodeRoomFull], payload.Message)
}

func TestNewInteractSeekFailure_ReportsNone(t *testing.T) {
	t.Parallel()

	msg := NewInteractSeekFailure("123456", "seeker", "box-1", "r1")
	require.Equal(t, MsgInteractSeek, msg.Type)

	payload, err := ParsePayload[InteractSeekPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, RequestInteractExploreErr, payload.Type)
	assert.Equal(t, "NONE", payload.FoundPlayerID)
	assert.Equal(t, "r1", payload.RequestID)
}

func TestNewInteractSeekSuccess(t *testing.T) {
	t.Parallel()

	msg := NewInteractSeekSuccess("123456", "seeker", "box-1", "hider", "r2")
	payload, err := ParsePayload[InteractSeekPayload](msg)
	require.NoError(t, err)
	assert.Equal(t, RequestInteractExploreOK, payload.Type)
	assert.Equal(t, "hider", payload.FoundPlayerID)
}
