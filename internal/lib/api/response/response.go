package response

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}

type ResultResponse struct {
	Result string `json:"result"`
}

func NewResultResponse(result string) ResultResponse {
	return ResultResponse{Result: result}
}
