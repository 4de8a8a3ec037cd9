package controllers

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"

	"inspections-console/internal/dto"
	apperrors "inspections-console/pkg/errors"
	"inspections-console/pkg/utils"
)

const (
	ExitKey = "0"

	menuTitle     = "=== Меню базы данных ==="
	promptText    = "Выберите действие: "
	invalidChoice = "Неверный выбор. Попробуйте еще раз."
	pressEnter    = "Нажмите Enter для продолжения..."
)

// Handler — одна операция меню.
type Handler func(ctx context.Context) (*dto.ResultDTO, error)

type Command struct {
	Key     string
	Title   string
	Handler Handler
}

// MenuController — цикл «меню → выполнение → меню» поверх построчного ввода.
type MenuController struct {
	in       *bufio.Scanner
	out      io.Writer
	commands []Command
	index    map[string]Command
	logger   *zap.Logger
}

func NewMenuController(in io.Reader, out io.Writer, logger *zap.Logger) *MenuController {
	return &MenuController{
		in:     bufio.NewScanner(in),
		out:    out,
		index:  make(map[string]Command),
		logger: logger,
	}
}

// Register добавляет пункт меню. Пункты выводятся в порядке регистрации.
func (c *MenuController) Register(key, title string, h Handler) {
	if _, exists := c.index[key]; exists {
		panic(fmt.Sprintf("пункт меню %q уже зарегистрирован", key))
	}
	cmd := Command{Key: key, Title: title, Handler: h}
	c.commands = append(c.commands, cmd)
	c.index[key] = cmd
}

func (c *MenuController) Commands() []Command {
	return c.commands
}

// Run крутит меню до выбора «0» или конца ввода.
// Ошибка возвращается только если операция завершилась сбоем хранилища.
func (c *MenuController) Run(ctx context.Context) error {
	for {
		c.render()

		input, ok := c.readLine()
		if !ok {
			return c.in.Err()
		}
		input = strings.TrimSpace(input)
		if input == ExitKey {
			c.logger.Info("Выход из меню")
			return nil
		}

		cmd, found := c.index[input]
		if !found {
			c.logger.Debug("Неизвестный пункт меню", zap.String("input", input))
			fmt.Fprintln(c.out, invalidChoice)
		} else if err := c.execute(ctx, cmd); err != nil {
			return err
		}

		fmt.Fprintln(c.out, pressEnter)
		if _, ok := c.readLine(); !ok {
			return c.in.Err()
		}
	}
}

func (c *MenuController) render() {
	fmt.Fprintln(c.out)
	utils.PrintHeader(c.out, menuTitle)
	for _, cmd := range c.commands {
		fmt.Fprintf(c.out, "%s. %s\n", cmd.Key, cmd.Title)
	}
	fmt.Fprintf(c.out, "%s. Выход\n", ExitKey)
	fmt.Fprint(c.out, promptText)
}

func (c *MenuController) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *MenuController) execute(ctx context.Context, cmd Command) error {
	start := time.Now()
	c.logger.Info("Выполнение операции", zap.String("key", cmd.Key), zap.String("title", cmd.Title))

	result, err := cmd.Handler(ctx)
	if err != nil {
		if apperrors.IsUserFacing(err) {
			c.logger.Warn("Операция не выполнена", zap.String("key", cmd.Key), zap.Error(err))
			utils.PrintError(c.out, err)
			return nil
		}
		return fmt.Errorf("операция %q: %w", cmd.Title, err)
	}

	utils.PrintResult(c.out, result)
	c.logger.Info("Операция выполнена", zap.String("key", cmd.Key), zap.Duration("duration", time.Since(start)))
	return nil
}
