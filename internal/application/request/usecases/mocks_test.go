package usecases

import (
	"context"
	"io"

	"orgjet/internal/domain/request"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/shared/events"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/logger"
)

type mockRequestRepository struct {
	SaveFunc     func(ctx context.Context, req *request.Request) error
	UpdateFunc   func(ctx context.Context, req *request.Request) error
	FindByIDFunc func(ctx context.Context, id uint) (*request.Request, error)
	ListFunc     func(ctx context.Context, filter request.Filter) ([]*request.Request, error)
	DeleteFunc   func(ctx context.Context, id uint) error
}

func (m *mockRequestRepository) Save(ctx context.Context, req *request.Request) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) Update(ctx context.Context, req *request.Request) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, req)
	}
	return nil
}

func (m *mockRequestRepository) FindByID(ctx context.Context, id uint) (*request.Request, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRequestRepository) List(ctx context.Context, filter request.Filter) ([]*request.Request, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockRequestRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockEventRepository struct {
	SaveFunc              func(ctx context.Context, ev *request.Event) error
	FindByRequestIDFunc   func(ctx context.Context, requestID uint) ([]*request.Event, error)
	DeleteByRequestIDFunc func(ctx context.Context, requestID uint) error
}

func (m *mockEventRepository) Save(ctx context.Context, ev *request.Event) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, ev)
	}
	return nil
}

func (m *mockEventRepository) FindByRequestID(ctx context.Context, requestID uint) ([]*request.Event, error) {
	if m.FindByRequestIDFunc != nil {
		return m.FindByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockEventRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	if m.DeleteByRequestIDFunc != nil {
		return m.DeleteByRequestIDFunc(ctx, requestID)
	}
	return nil
}

type mockAssigneeRepository struct {
	AddFunc               func(ctx context.Context, requestID, userID uint) error
	RemoveFunc            func(ctx context.Context, requestID, userID uint) error
	ListUserIDsFunc       func(ctx context.Context, requestID uint) ([]uint, error)
	ListByRequestIDsFunc  func(ctx context.Context, requestIDs []uint) (map[uint][]uint, error)
	ExistsFunc            func(ctx context.Context, requestID, userID uint) (bool, error)
	DeleteByRequestIDFunc func(ctx context.Context, requestID uint) error
}

func (m *mockAssigneeRepository) Add(ctx context.Context, requestID, userID uint) error {
	if m.AddFunc != nil {
		return m.AddFunc(ctx, requestID, userID)
	}
	return nil
}

func (m *mockAssigneeRepository) Remove(ctx context.Context, requestID, userID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, requestID, userID)
	}
	return nil
}

func (m *mockAssigneeRepository) ListUserIDs(ctx context.Context, requestID uint) ([]uint, error) {
	if m.ListUserIDsFunc != nil {
		return m.ListUserIDsFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockAssigneeRepository) ListByRequestIDs(ctx context.Context, requestIDs []uint) (map[uint][]uint, error) {
	if m.ListByRequestIDsFunc != nil {
		return m.ListByRequestIDsFunc(ctx, requestIDs)
	}
	return map[uint][]uint{}, nil
}

func (m *mockAssigneeRepository) Exists(ctx context.Context, requestID, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, requestID, userID)
	}
	return false, nil
}

func (m *mockAssigneeRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	if m.DeleteByRequestIDFunc != nil {
		return m.DeleteByRequestIDFunc(ctx, requestID)
	}
	return nil
}

type mockSubscriptionRepository struct {
	SaveFunc              func(ctx context.Context, sub *request.Subscription) error
	RemoveFunc            func(ctx context.Context, requestID, userID uint) error
	ExistsFunc            func(ctx context.Context, requestID, userID uint) (bool, error)
	ListUserIDsFunc       func(ctx context.Context, requestID uint) ([]uint, error)
	DeleteByRequestIDFunc func(ctx context.Context, requestID uint) error
}

func (m *mockSubscriptionRepository) Save(ctx context.Context, sub *request.Subscription) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sub)
	}
	return nil
}

func (m *mockSubscriptionRepository) Remove(ctx context.Context, requestID, userID uint) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(ctx, requestID, userID)
	}
	return nil
}

func (m *mockSubscriptionRepository) Exists(ctx context.Context, requestID, userID uint) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, requestID, userID)
	}
	return false, nil
}

func (m *mockSubscriptionRepository) ListUserIDs(ctx context.Context, requestID uint) ([]uint, error) {
	if m.ListUserIDsFunc != nil {
		return m.ListUserIDsFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockSubscriptionRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	if m.DeleteByRequestIDFunc != nil {
		return m.DeleteByRequestIDFunc(ctx, requestID)
	}
	return nil
}

type mockAttachmentRepository struct {
	SaveFunc              func(ctx context.Context, att *request.Attachment) error
	FindByRequestIDFunc   func(ctx context.Context, requestID uint) ([]*request.Attachment, error)
	DeleteByRequestIDFunc func(ctx context.Context, requestID uint) error
}

func (m *mockAttachmentRepository) Save(ctx context.Context, att *request.Attachment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, att)
	}
	return nil
}

func (m *mockAttachmentRepository) FindByRequestID(ctx context.Context, requestID uint) ([]*request.Attachment, error) {
	if m.FindByRequestIDFunc != nil {
		return m.FindByRequestIDFunc(ctx, requestID)
	}
	return nil, nil
}

func (m *mockAttachmentRepository) DeleteByRequestID(ctx context.Context, requestID uint) error {
	if m.DeleteByRequestIDFunc != nil {
		return m.DeleteByRequestIDFunc(ctx, requestID)
	}
	return nil
}

type mockTypeRepository struct {
	SaveFunc       func(ctx context.Context, rt *requesttype.RequestType) error
	FindByIDFunc   func(ctx context.Context, id uint) (*requesttype.RequestType, error)
	FindByNameFunc func(ctx context.Context, name string) (*requesttype.RequestType, error)
	ListFunc       func(ctx context.Context) ([]*requesttype.RequestType, error)
}

func (m *mockTypeRepository) Save(ctx context.Context, rt *requesttype.RequestType) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, rt)
	}
	return nil
}

func (m *mockTypeRepository) FindByID(ctx context.Context, id uint) (*requesttype.RequestType, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTypeRepository) FindByName(ctx context.Context, name string) (*requesttype.RequestType, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTypeRepository) List(ctx context.Context) ([]*requesttype.RequestType, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockTeamRepository struct {
	SaveFunc       func(ctx context.Context, t *team.Team) error
	FindByIDFunc   func(ctx context.Context, id uint) (*team.Team, error)
	FindByNameFunc func(ctx context.Context, name string) (*team.Team, error)
	ListFunc       func(ctx context.Context) ([]*team.Team, error)
}

func (m *mockTeamRepository) Save(ctx context.Context, t *team.Team) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTeamRepository) FindByID(ctx context.Context, id uint) (*team.Team, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTeamRepository) FindByName(ctx context.Context, name string) (*team.Team, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, nil
}

func (m *mockTeamRepository) List(ctx context.Context) ([]*team.Team, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
	FindByIDsFunc   func(ctx context.Context, ids []uint) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByIDs(ctx context.Context, ids []uint) ([]*user.User, error) {
	if m.FindByIDsFunc != nil {
		return m.FindByIDsFunc(ctx, ids)
	}
	return nil, nil
}

type mockFileStore struct {
	SaveFunc   func(ctx context.Context, originalName string, content io.Reader, size int64) (string, error)
	RemoveFunc func(url string) error
}

func (m *mockFileStore) Save(ctx context.Context, originalName string, content io.Reader, size int64) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, originalName, content, size)
	}
	return "/uploads/" + originalName, nil
}

func (m *mockFileStore) Remove(url string) error {
	if m.RemoveFunc != nil {
		return m.RemoveFunc(url)
	}
	return nil
}

type mockTxRunner struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxRunner) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockEventDispatcher struct {
	PublishFunc    func(event events.DomainEvent) error
	PublishAllFunc func(evs []events.DomainEvent) error
}

func (m *mockEventDispatcher) Publish(event events.DomainEvent) error {
	if m.PublishFunc != nil {
		return m.PublishFunc(event)
	}
	return nil
}

func (m *mockEventDispatcher) PublishAll(evs []events.DomainEvent) error {
	if m.PublishAllFunc != nil {
		return m.PublishAllFunc(evs)
	}
	return nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}
