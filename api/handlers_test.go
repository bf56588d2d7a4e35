package api

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"message-service/auth"
	"message-service/contract"
	"message-service/domain"
	"message-service/draft"
	"message-service/messenger"
	"message-service/mocks"
	"message-service/notify"
	"message-service/observability"
)

var jwtSecret = []byte("handlers test signing secret")

type testServer struct {
	handler http.Handler
	backend *mocks.MockChatBackend
	repo    *mocks.MockDraftRepository
	live    *mocks.MockLivePublisher
	emails  *mocks.MockEmailSender
	sink    *mocks.MockAnalyticsSink
}

func newTestServer(t *testing.T, ctrl *gomock.Controller) testServer {
	t.Helper()
	log := slog.Default()

	ts := testServer{
		backend: mocks.NewMockChatBackend(ctrl),
		repo:    mocks.NewMockDraftRepository(ctrl),
		live:    mocks.NewMockLivePublisher(ctrl),
		emails:  mocks.NewMockEmailSender(ctrl),
		sink:    mocks.NewMockAnalyticsSink(ctrl),
	}

	stats := observability.NewStats(log)
	drafts := draft.NewStore(log, ts.repo, "handlers test master key")
	dispatcher := notify.NewDispatcher(log, drafts, ts.live, ts.emails, ts.sink, stats, time.Second)
	m := messenger.NewMessenger(log, ts.backend, dispatcher, stats, "system-user")
	ts.handler = NewServer(log, m, drafts, stats, jwtSecret).Handler()
	return ts
}

func bearerFor(t *testing.T, userID string, roles ...string) string {
	t.Helper()
	token, err := auth.GenerateToken(userID, userID, roles, jwtSecret, time.Minute)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(t *testing.T, handler http.Handler, method, path string, body any, mutate func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	r := httptest.NewRequest(method, path, reader)
	r.Header.Set("Content-Type", "application/json")
	if mutate != nil {
		mutate(r)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	return w
}

func Test_Create_Message_Happy_Path(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	ts.backend.EXPECT().Post(gomock.Any(), gomock.Any()).
		Return(domain.PostResult{MessageID: "msg-1", RoomID: "room-1"}, nil).Times(1)
	ts.backend.EXPECT().MarkRoomRead(gomock.Any(), "room-1").Return(nil).Times(1)
	ts.repo.EXPECT().Delete("asker-1", "room-1").Return(nil).Times(1)
	ts.live.EXPECT().Publish(gomock.Any(), "room-1").Return(nil).Times(1)
	ts.sink.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	w := doRequest(t, ts.handler, http.MethodPost, "/messages",
		map[string]any{"message": "hello"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "asker-1"))
			r.Header.Set(headerRoomID, "room-1")
			r.Header.Set(headerBackendUserID, "asker-1")
			r.Header.Set(headerBackendToken, "rc-token")
		})

	req.Equal(http.StatusCreated, w.Code)
	var body messageResponse
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Equal("msg-1", body.MessageID)
}

func Test_Create_Message_Requires_A_Bearer_Token(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	w := doRequest(t, ts.handler, http.MethodPost, "/messages",
		map[string]any{"message": "hello"}, nil)

	req.Equal(http.StatusUnauthorized, w.Code)
}

func Test_Create_Message_Requires_The_Room_Header(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	w := doRequest(t, ts.handler, http.MethodPost, "/messages",
		map[string]any{"message": "hello"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "asker-1"))
		})

	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_Create_Reassignment_Event_Without_Args_Is_A_Caller_Error(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	// Reassignment without args is a caller error, not a server error
	w := doRequest(t, ts.handler, http.MethodPost, "/messages/events",
		map[string]any{"messageType": "reassign-consultant"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "cons-1", "consultant"))
			r.Header.Set(headerRoomID, "room-1")
		})

	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_Create_Event_Rejects_An_Unknown_Type(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	// Nothing reaches the backend for a type outside the supported set
	w := doRequest(t, ts.handler, http.MethodPost, "/messages/events",
		map[string]any{"messageType": "poll"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "cons-1", "consultant"))
			r.Header.Set(headerRoomID, "room-1")
		})

	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_List_Messages_Decodes_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	ts.backend.EXPECT().FindMessages(gomock.Any(), "room-1", 0, 50).Return([]domain.BackendMessage{
		{ID: "msg-1", RoomID: "room-1", SenderID: "asker-1", Body: "hello"},
		{ID: "msg-2", RoomID: "room-1", SenderID: "system-user",
			Alias: `{"messageType":"further-steps"}`},
	}, nil).Times(1)

	w := doRequest(t, ts.handler, http.MethodGet, "/messages", nil, func(r *http.Request) {
		r.Header.Set("Authorization", bearerFor(t, "asker-1"))
		r.Header.Set(headerRoomID, "room-1")
	})

	req.Equal(http.StatusOK, w.Code)
	var body listMessagesResponse
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Len(body.Messages, 2)
	req.Equal("hello", body.Messages[0].Message)
	req.Nil(body.Messages[0].Event)
	req.NotNil(body.Messages[1].Event)
	req.Equal("further-steps", body.Messages[1].Event.MessageType)
}

func Test_List_Messages_Rejects_A_Negative_Offset(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	w := doRequest(t, ts.handler, http.MethodGet, "/messages?offset=-1", nil, func(r *http.Request) {
		r.Header.Set("Authorization", bearerFor(t, "asker-1"))
		r.Header.Set(headerRoomID, "room-1")
	})

	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_Delete_Message_Status_Mapping(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	del := func() *httptest.ResponseRecorder {
		return doRequest(t, ts.handler, http.MethodDelete, "/messages/msg-1", nil, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "asker-1"))
			r.Header.Set(headerBackendUserID, "asker-1")
		})
	}

	// Deleting someone else's message is forbidden
	ts.backend.EXPECT().FindMessage(gomock.Any(), "msg-1").Return(&domain.BackendMessage{
		ID: "msg-1", RoomID: "room-1", SenderID: "cons-1",
	}, nil).Times(1)
	req.Equal(http.StatusForbidden, del().Code)

	// An unknown id is not found
	ts.backend.EXPECT().FindMessage(gomock.Any(), "msg-1").Return(nil, nil).Times(1)
	req.Equal(http.StatusNotFound, del().Code)

	// The creator may delete
	ts.backend.EXPECT().FindMessage(gomock.Any(), "msg-1").Return(&domain.BackendMessage{
		ID: "msg-1", RoomID: "room-1", SenderID: "asker-1",
	}, nil).Times(1)
	ts.backend.EXPECT().DeleteMessage(gomock.Any(), "room-1", "msg-1").Return(true, nil).Times(1)
	req.Equal(http.StatusNoContent, del().Code)
}

func Test_Patch_Event_Maps_Not_Found(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	ts.backend.EXPECT().FindMessage(gomock.Any(), "missing").Return(nil, nil).Times(1)

	w := doRequest(t, ts.handler, http.MethodPatch, "/messages/missing",
		map[string]any{"status": "CONFIRMED"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "cons-1", "consultant"))
		})

	req.Equal(http.StatusNotFound, w.Code)
}

func Test_Draft_Save_And_Find_Round_Trip(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	var stored []byte
	ts.repo.EXPECT().Upsert(gomock.Any()).DoAndReturn(func(rec contract.DraftRecord) (bool, error) {
		stored = rec.Ciphertext
		return true, nil
	}).Times(1)

	w := doRequest(t, ts.handler, http.MethodPost, "/drafts",
		map[string]any{"message": "half-written reply"}, func(r *http.Request) {
			r.Header.Set("Authorization", bearerFor(t, "asker-1"))
			r.Header.Set(headerRoomID, "room-1")
		})
	req.Equal(http.StatusCreated, w.Code)
	req.NotContains(string(stored), "half-written reply")

	ts.repo.EXPECT().Find("asker-1", "room-1").DoAndReturn(func(userID, roomID string) (*contract.DraftRecord, error) {
		return &contract.DraftRecord{UserID: userID, RoomID: roomID, Ciphertext: stored}, nil
	}).Times(1)

	w = doRequest(t, ts.handler, http.MethodGet, "/drafts", nil, func(r *http.Request) {
		r.Header.Set("Authorization", bearerFor(t, "asker-1"))
		r.Header.Set(headerRoomID, "room-1")
	})
	req.Equal(http.StatusOK, w.Code)

	var body draftResponse
	req.NoError(json.Unmarshal(w.Body.Bytes(), &body))
	req.Equal("half-written reply", body.Message)
}

func Test_Find_Draft_Without_One_Is_No_Content(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	ts.repo.EXPECT().Find("asker-1", "room-1").Return(nil, nil).Times(1)

	w := doRequest(t, ts.handler, http.MethodGet, "/drafts", nil, func(r *http.Request) {
		r.Header.Set("Authorization", bearerFor(t, "asker-1"))
		r.Header.Set(headerRoomID, "room-1")
	})

	req.Equal(http.StatusNoContent, w.Code)
}

func Test_Master_Key_Rotation_Statuses(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	rotate := func(key string) *httptest.ResponseRecorder {
		return doRequest(t, ts.handler, http.MethodPost, "/admin/masterkey",
			map[string]any{"masterKey": key}, func(r *http.Request) {
				r.Header.Set("Authorization", bearerFor(t, "admin-1", "technical"))
			})
	}

	w := rotate("a brand new master key")
	req.Equal(http.StatusAccepted, w.Code)

	// Rotating to the key already in use is a conflict
	w = rotate("a brand new master key")
	req.Equal(http.StatusConflict, w.Code)

	// Too short to pass validation
	w = rotate("short")
	req.Equal(http.StatusBadRequest, w.Code)
}

func Test_Debug_Stats_Is_Unauthenticated(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	ts := newTestServer(t, ctrl)

	w := doRequest(t, ts.handler, http.MethodGet, "/debug/stats", nil, nil)
	req.Equal(http.StatusOK, w.Code)
	req.Contains(w.Body.String(), "messages_posted")
}
