package notify

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"message-service/domain"
	"message-service/draft"
	"message-service/mocks"
	"message-service/observability"
)

func newTestDispatcher(t *testing.T, ctrl *gomock.Controller) (*Dispatcher, *mocks.MockDraftRepository,
	*mocks.MockLivePublisher, *mocks.MockEmailSender, *mocks.MockAnalyticsSink) {
	t.Helper()
	log := slog.Default()

	repo := mocks.NewMockDraftRepository(ctrl)
	live := mocks.NewMockLivePublisher(ctrl)
	emails := mocks.NewMockEmailSender(ctrl)
	analytics := mocks.NewMockAnalyticsSink(ctrl)

	drafts := draft.NewStore(log, repo, "dispatcher test master key")
	dispatcher := NewDispatcher(log, drafts, live, emails, analytics,
		observability.NewStats(log), time.Second)
	return dispatcher, repo, live, emails, analytics
}

func Test_MessagePosted_Runs_All_Side_Effects(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, emails, analytics := newTestDispatcher(t, ctrl)

	actor := domain.Identity{UserID: "asker-1", Roles: []string{"user"}}

	// Given a posted message with an explicit notification request
	repo.EXPECT().Delete("asker-1", "room-1").Return(nil).Times(1)
	live.EXPECT().Publish(gomock.Any(), "room-1").Return(nil).Times(1)
	emails.EXPECT().SendNewMessageEmail(gomock.Any(), "room-1").Return(nil).Times(1)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event domain.AnalyticsEvent) error {
			req.Equal("asker-1", event.UserID)
			req.Equal(domain.RoleAsker, event.UserRole)
			req.Equal("room-1", event.RoomID)
			req.False(event.HasAttachment)
			return nil
		}).Times(1)

	// When dispatching
	dispatcher.MessagePosted(context.Background(), MessagePosted{
		RoomID:    "room-1",
		Actor:     actor,
		SendEmail: true,
	})
	// All steps were awaited before returning; gomock verifies counts.
}

func Test_MessagePosted_System_User_Gets_No_Live_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, emails, analytics := newTestDispatcher(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	live.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	emails.EXPECT().SendNewMessageEmail(gomock.Any(), gomock.Any()).Times(0)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	dispatcher.MessagePosted(context.Background(), MessagePosted{
		RoomID:         "room-1",
		Actor:          domain.Identity{UserID: "system"},
		FromSystemUser: true,
		SendEmail:      false,
	})
}

func Test_MessagePosted_Resolves_Consultant_Role(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, _, analytics := newTestDispatcher(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	live.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, event domain.AnalyticsEvent) error {
			req.Equal(domain.RoleConsultant, event.UserRole)
			return nil
		}).Times(1)

	dispatcher.MessagePosted(context.Background(), MessagePosted{
		RoomID: "room-1",
		Actor:  domain.Identity{UserID: "consultant-1", Roles: []string{"consultant"}},
	})
}

func Test_Step_Failure_Does_Not_Stop_The_Others(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, emails, analytics := newTestDispatcher(t, ctrl)

	// Given the live update blows up
	live.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("live service down")).Times(1)

	// Then every other step is still attempted
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	emails.EXPECT().SendNewMessageEmail(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	dispatcher.MessagePosted(context.Background(), MessagePosted{
		RoomID:    "room-1",
		Actor:     domain.Identity{UserID: "asker-1"},
		SendEmail: true,
	})
}

func Test_Cancelled_Request_Context_Does_Not_Cancel_Steps(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, _, analytics := newTestDispatcher(t, ctrl)

	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	live.EXPECT().Publish(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, roomID string) error {
			// The step context is detached from the already-cancelled request.
			req.NoError(ctx.Err())
			return nil
		}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dispatcher.MessagePosted(ctx, MessagePosted{
		RoomID: "room-1",
		Actor:  domain.Identity{UserID: "asker-1"},
	})
}

func Test_FeedbackPosted_Always_Notifies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, repo, live, emails, analytics := newTestDispatcher(t, ctrl)

	repo.EXPECT().Delete("consultant-1", "feedback-room").Return(nil).Times(1)
	live.EXPECT().Publish(gomock.Any(), "feedback-room").Return(nil).Times(1)
	emails.EXPECT().SendFeedbackMessageEmail(gomock.Any(), "feedback-room").Return(nil).Times(1)
	analytics.EXPECT().Emit(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	dispatcher.FeedbackPosted(context.Background(), "feedback-room",
		domain.Identity{UserID: "consultant-1", Roles: []string{"consultant"}})
}

func Test_Reassign_Emails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	dispatcher, _, _, emails, _ := newTestDispatcher(t, ctrl)

	consultantID := uuid.New()
	emails.EXPECT().SendReassignRequestEmail(gomock.Any(), "room-1", consultantID).Return(nil).Times(1)
	emails.EXPECT().SendReassignDecisionEmail(gomock.Any(), "room-1", consultantID).Return(nil).Times(1)

	dispatcher.ReassignRequested(context.Background(), "room-1", consultantID)
	dispatcher.ReassignDecided(context.Background(), "room-1", consultantID)
}
