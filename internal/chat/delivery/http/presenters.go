package http

import (
	"todo-chat-api/internal/chat"
	"todo-chat-api/internal/conversation"
	"todo-chat-api/internal/model"
	"todo-chat-api/pkg/response"
)

// --- Request DTOs ---

type sendMessageReq struct {
	ConversationID string    `json:"conversation_id"`
	Message        string    `json:"message" binding:"required,max=2000"`
	Tasks          []taskReq `json:"tasks"` // optional client-side snapshot
}

type taskReq struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
	DueDate     string `json:"due_date"`
}

func (r sendMessageReq) toInput() chat.Input {
	var tasks []model.Task
	if r.Tasks != nil {
		tasks = make([]model.Task, 0, len(r.Tasks))
		for _, t := range r.Tasks {
			tasks = append(tasks, model.Task{
				ID:          t.ID,
				Title:       t.Title,
				Description: t.Description,
				Priority:    model.Priority(t.Priority),
				Status:      model.Status(t.Status),
				DueDate:     t.DueDate,
			})
		}
	}
	return chat.Input{
		ConversationID: r.ConversationID,
		Message:        r.Message,
		Tasks:          tasks,
	}
}

// --- Response DTOs ---

type sendMessageResp struct {
	ConversationID string `json:"conversation_id"`
	Reply          string `json:"reply"`
}

func (h *handler) newSendMessageResp(out chat.Output) sendMessageResp {
	return sendMessageResp{
		ConversationID: out.ConversationID,
		Reply:          out.Reply,
	}
}

type messageResp struct {
	ID        string            `json:"id"`
	Role      string            `json:"role"`
	Content   string            `json:"content"`
	CreatedAt response.DateTime `json:"created_at"`
}

type conversationResp struct {
	ID        string            `json:"id"`
	Messages  []messageResp     `json:"messages"`
	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func (h *handler) newConversationResp(conv *conversation.Conversation) conversationResp {
	messages := make([]messageResp, len(conv.Messages))
	for i, m := range conv.Messages {
		messages[i] = messageResp{
			ID:        m.ID,
			Role:      string(m.Role),
			Content:   m.Content,
			CreatedAt: response.DateTime(m.CreatedAt),
		}
	}
	return conversationResp{
		ID:        conv.ID,
		Messages:  messages,
		CreatedAt: response.DateTime(conv.CreatedAt),
		UpdatedAt: response.DateTime(conv.UpdatedAt),
	}
}
