package dto

import (
	"encoding/json"
	"net/http"

	"shipease/internal/entities"
)

const (
	MsgBadRequest       = "Bad Request"
	MsgNotFound         = "Not Found"
	MsgInternalError    = "Internal Server Error"
	MsgUserAlreadyExist = "User Already Exists"
)

type Message struct {
	Message string `json:"message"`
}

type InsertResult struct {
	Acknowledged bool    `json:"acknowledged"`
	InsertedID   *string `json:"insertedId"`
}

// UserExistsResult ответ POST /users для уже зарегистрированного email.
type UserExistsResult struct {
	Message    string  `json:"message"`
	InsertedID *string `json:"insertedId"`
}

type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
	Storage *string `json:"storage,omitempty"`
}

func NewInsertResult(id string) InsertResult {
	return InsertResult{Acknowledged: true, InsertedID: &id}
}

func NewUpdateResult(res *entities.UpdateResult) UpdateResult {
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
	}
}

func NewDeleteResult(deleted int64) DeleteResult {
	return DeleteResult{Acknowledged: true, DeletedCount: deleted}
}

// WriteJSON ошибку кодирования возвращает вызывающему для логирования.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

func WriteMessage(w http.ResponseWriter, status int, message string) error {
	return WriteJSON(w, status, Message{Message: message})
}
