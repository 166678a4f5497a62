package usecases

import (
	"context"

	"orgjet/internal/application/request/dto"
	"orgjet/internal/domain/request"
	"orgjet/internal/domain/requesttype"
	"orgjet/internal/domain/team"
	"orgjet/internal/domain/user"
	"orgjet/internal/shared/logger"
)

// includeLoader resolves the denormalized include data carried on list and
// board rows: type names, team names, and assignee summaries.
type includeLoader struct {
	typeRepo     requesttype.Repository
	teamRepo     team.Repository
	userRepo     user.Repository
	assigneeRepo request.AssigneeRepository
	logger       logger.Interface
}

func (l *includeLoader) buildListItems(ctx context.Context, reqs []*request.Request) ([]dto.RequestListItemDTO, error) {
	typeNames, slaMinutes := l.loadTypes(ctx)
	teamNames := l.loadTeams(ctx)

	ids := make([]uint, 0, len(reqs))
	for _, r := range reqs {
		ids = append(ids, r.ID())
	}

	membership := map[uint][]uint{}
	if len(ids) > 0 {
		m, err := l.assigneeRepo.ListByRequestIDs(ctx, ids)
		if err != nil {
			return nil, err
		}
		membership = m
	}

	userNames := l.loadUserNames(ctx, reqs, membership)

	items := make([]dto.RequestListItemDTO, 0, len(reqs))
	for _, r := range reqs {
		item := dto.RequestListItemDTO{
			ID:        r.ID(),
			Title:     r.Title(),
			Status:    r.Status().String(),
			Priority:  r.Priority().String(),
			TypeName:  typeNames[r.TypeID()],
			CreatorID: r.CreatorID(),
			Assignees: l.assigneeSummaries(r, membership[r.ID()], userNames),
			DueAt:     r.DueAt(),
			CreatedAt: r.CreatedAt(),
			UpdatedAt: r.UpdatedAt(),
		}
		if sla, ok := slaMinutes[r.TypeID()]; ok {
			item.SLAMinutes = sla
		}
		if r.TeamID() != nil {
			if name, ok := teamNames[*r.TeamID()]; ok {
				item.TeamName = &name
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// assigneeSummaries merges the legacy single assignee with join membership,
// without duplicates, preserving join order.
func (l *includeLoader) assigneeSummaries(r *request.Request, memberIDs []uint, userNames map[uint]string) []dto.AssigneeDTO {
	seen := make(map[uint]bool, len(memberIDs)+1)
	out := make([]dto.AssigneeDTO, 0, len(memberIDs)+1)

	add := func(id uint) {
		if id == 0 || seen[id] {
			return
		}
		seen[id] = true
		out = append(out, dto.AssigneeDTO{ID: id, Name: userNames[id]})
	}

	for _, id := range memberIDs {
		add(id)
	}
	if r.AssigneeID() != nil {
		add(*r.AssigneeID())
	}
	return out
}

func (l *includeLoader) loadTypes(ctx context.Context) (map[uint]string, map[uint]*int) {
	names := map[uint]string{}
	sla := map[uint]*int{}
	types, err := l.typeRepo.List(ctx)
	if err != nil {
		l.logger.Warnw("failed to load request types", "error", err)
		return names, sla
	}
	for _, t := range types {
		names[t.ID()] = t.Name()
		sla[t.ID()] = t.DefaultSLAMinutes()
	}
	return names, sla
}

func (l *includeLoader) loadTeams(ctx context.Context) map[uint]string {
	names := map[uint]string{}
	teams, err := l.teamRepo.List(ctx)
	if err != nil {
		l.logger.Warnw("failed to load teams", "error", err)
		return names
	}
	for _, t := range teams {
		names[t.ID()] = t.Name()
	}
	return names
}

func (l *includeLoader) loadUserNames(ctx context.Context, reqs []*request.Request, membership map[uint][]uint) map[uint]string {
	idSet := map[uint]bool{}
	for _, r := range reqs {
		if r.AssigneeID() != nil {
			idSet[*r.AssigneeID()] = true
		}
		for _, id := range membership[r.ID()] {
			idSet[id] = true
		}
	}
	if len(idSet) == 0 {
		return map[uint]string{}
	}

	ids := make([]uint, 0, len(idSet))
	for id := range idSet {
		ids = append(ids, id)
	}

	names := map[uint]string{}
	users, err := l.userRepo.FindByIDs(ctx, ids)
	if err != nil {
		l.logger.Warnw("failed to load assignee names", "error", err)
		return names
	}
	for _, u := range users {
		names[u.ID()] = u.Name()
	}
	return names
}
