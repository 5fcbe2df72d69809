package dto

import (
	"oasis/shared/constant"
	"oasis/shared/model"
	"oasis/shared/timezone"
)

type Metadata struct {
	ID        int64  `json:"id"`
	CreatedAt string `json:"created_at"`
}

func (m *Metadata) FromModel(model model.Metadata) {
	m.ID = model.ID
	m.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}
