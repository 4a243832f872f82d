package presenter

import "github.com/gofiber/fiber/v2"

// Response is the success envelope every endpoint shares.
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message,omitempty"`
	Data       any    `json:"data,omitempty"`
	Pagination any    `json:"pagination,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Data(c *fiber.Ctx, status int, data any) error {
	return JSON(c, status, Response{Success: true, Data: data})
}

func Message(c *fiber.Ctx, status int, message string, data any) error {
	return JSON(c, status, Response{Success: true, Message: message, Data: data})
}

func Page(c *fiber.Ctx, data, pagination any) error {
	return JSON(c, fiber.StatusOK, Response{Success: true, Data: data, Pagination: pagination})
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Error: message})
}
