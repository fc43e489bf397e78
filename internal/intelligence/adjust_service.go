package intelligence

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ritmo-app/ritmo/internal/llm"
)

// AdjustService turns a behavior snapshot into a validated plan adjustment.
type AdjustService interface {
	// ProposeAdjustment asks the model for new plan parameters. The caller
	// decides whether to apply them; a failure here never touches the plan.
	ProposeAdjustment(ctx context.Context, snapshot BehaviorSnapshot) (*PlanAdjustment, error)
}

type adjustService struct {
	client llm.Client
}

// NewAdjustService creates an AdjustService backed by a model client.
func NewAdjustService(client llm.Client) AdjustService {
	return &adjustService{client: client}
}

func (s *adjustService) ProposeAdjustment(ctx context.Context, snapshot BehaviorSnapshot) (*PlanAdjustment, error) {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return nil, fmt.Errorf("marshaling snapshot: %w", err)
	}

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskAdjust,
		SystemPrompt: adjustSystemPrompt,
		UserPrompt:   string(data),
	})
	if err != nil {
		return nil, fmt.Errorf("generating adjustment: %w", err)
	}

	adjustment, err := llm.ExtractJSON[PlanAdjustment](resp.Text, ValidateAdjustment)
	if err != nil {
		return nil, err
	}
	return &adjustment, nil
}
