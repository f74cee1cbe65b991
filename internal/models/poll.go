package models

type ResponseType string

const (
	ResponseYes   ResponseType = "yes"
	ResponseNo    ResponseType = "no"
	ResponseMaybe ResponseType = "maybe"

	// ActionCancel — явная отмена записи, в опросе списка для неё нет,
	// но в историю событий она попадает.
	ActionCancel ResponseType = "cancel"
)

// PollDay — списки ответов на один календарный день. Ключ — отображаемое имя,
// как в исходном боте: имя может быть только в одном списке.
type PollDay struct {
	Yes   []string `json:"yes"`
	No    []string `json:"no"`
	Maybe []string `json:"maybe"`
}

func (d *PollDay) List(r ResponseType) []string {
	switch r {
	case ResponseYes:
		return d.Yes
	case ResponseNo:
		return d.No
	case ResponseMaybe:
		return d.Maybe
	}
	return nil
}

func (d *PollDay) Empty() bool {
	return len(d.Yes) == 0 && len(d.No) == 0 && len(d.Maybe) == 0
}

// RespondResult — что произошло при ответе на опрос.
type RespondResult struct {
	Date      string
	Duplicate bool
	// MovedFrom — список, из которого пользователя убрали перед записью в новый.
	MovedFrom ResponseType
	// Restored — занятие возвращено на абонемент (был "приду", стал другой ответ).
	Restored bool
	// Credit заполняется только для ответа "приду".
	Credit *CreditDecision
}

type CancelResult struct {
	Date        string
	Removed     bool
	RemovedFrom ResponseType
	Restored    bool
}
