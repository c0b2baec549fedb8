package api

import "profilecoach/models"

// DomainHistoryToAPITurns converts a domain ChatHistory to API turn models
func DomainHistoryToAPITurns(history models.ChatHistory) []TurnModel {
	turns := make([]TurnModel, 0, len(history))
	for _, turn := range history {
		turns = append(turns, TurnModel{
			Role:    string(turn.Role),
			Content: turn.Content,
		})
	}
	return turns
}
