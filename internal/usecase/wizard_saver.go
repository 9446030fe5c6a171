package usecase

import "context"

// CareerDraftSaver adapts the career usecase to the wizard's saver contract,
// so wizard drafts flow through the same sanitization and quota rules as
// direct API calls.
type CareerDraftSaver struct {
	careers CareerUsecase
}

func NewCareerDraftSaver(careers CareerUsecase) *CareerDraftSaver {
	return &CareerDraftSaver{careers: careers}
}

func (s *CareerDraftSaver) Create(ctx context.Context, payload map[string]any) (string, string, error) {
	created, err := s.careers.Create(ctx, payload)
	if err != nil {
		return "", "", err
	}
	return created.RecordID, created.LegacyID, nil
}

func (s *CareerDraftSaver) Update(ctx context.Context, id string, payload map[string]any) error {
	_, err := s.careers.Update(ctx, id, payload)
	return err
}
