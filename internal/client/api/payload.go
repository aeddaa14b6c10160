package api

import "encoding/json"

// Task is a single to-do entry as served by the remote store.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// AuthResult is the validated outcome of a login or signup call.
type AuthResult struct {
	Token   string
	UserID  string
	Message string
}

// flexID tolerates the server sending the user identifier either as a JSON
// string or as a number; it is always held as a string, since the durable
// store only holds strings.
type flexID string

func (f *flexID) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// authPayload is the loose shape of auth responses. Fields may be absent;
// validation happens after decoding.
type authPayload struct {
	Token   string  `json:"token"`
	UserID  *flexID `json:"userId"`
	Message string  `json:"message"`
}

// taskPayload is the loose shape of single-task responses.
type taskPayload struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	Message   string `json:"message"`
}

// deletePayload is the loose shape of delete responses.
type deletePayload struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// messagePayload extracts an embedded error message from an otherwise
// unexpected body.
type messagePayload struct {
	Message string `json:"message"`
}
