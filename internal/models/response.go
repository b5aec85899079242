package models

import (
	"net/http"
	"time"
)

// ResponseModel Base response structure that can be reused
type ResponseModel struct {
	Code        int         `json:"code"`
	CurrentTime int64       `json:"currentTime"`
	Data        interface{} `json:"data"`
	Text        string      `json:"text"`
	Version     int         `json:"version"`
}

// EntryData wraps a single entry payload with its references.
type EntryData struct {
	Entry      interface{}     `json:"entry"`
	References ReferencesModel `json:"references"`
}

// ListData wraps a list payload with its references.
type ListData struct {
	LimitExceeded bool            `json:"limitExceeded"`
	List          interface{}     `json:"list"`
	References    ReferencesModel `json:"references"`
}

// ResponseCurrentTime returns the current time in epoch milliseconds.
func ResponseCurrentTime() int64 {
	return time.Now().UnixNano() / int64(time.Millisecond)
}

// NewOKResponse builds a 200 envelope around an arbitrary payload.
func NewOKResponse(data interface{}) ResponseModel {
	return ResponseModel{
		Code:        http.StatusOK,
		CurrentTime: ResponseCurrentTime(),
		Data:        data,
		Text:        "OK",
		Version:     2,
	}
}

// NewEntryResponse builds a 200 envelope with a single entry and references.
func NewEntryResponse(entry interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(EntryData{Entry: entry, References: references})
}

// NewListResponse builds a 200 envelope with a list and references.
func NewListResponse(list interface{}, references ReferencesModel) ResponseModel {
	return NewOKResponse(ListData{List: list, References: references})
}

// NewListResponseWithRange builds a list envelope with an explicit
// limitExceeded marker for truncated result sets.
func NewListResponseWithRange(list interface{}, references ReferencesModel, limitExceeded bool) ResponseModel {
	return NewOKResponse(ListData{LimitExceeded: limitExceeded, List: list, References: references})
}
