package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
	"trade_manager/internal/models"
	"trade_manager/internal/repository"
	"trade_manager/pkg/pdfreport"

	"go.uber.org/zap"
)

// ReportService renders tabular PDF snapshots of clients and orders. Pure
// projection: nothing is mutated, the only side effect is the file on disk.
type ReportService interface {
	// GenerateClientsReport writes the non-deleted client list and
	// returns the file path.
	GenerateClientsReport() (string, error)
	// GenerateOrdersReport writes the order list, scoped to one client
	// when clientID is set.
	GenerateOrdersReport(clientID *uint) (string, error)
}

type reportService struct {
	clientRepo repository.ClientRepository
	orderRepo  repository.OrderRepository
	outputDir  string
	logger     *zap.Logger
}

func NewReportService(
	clientRepo repository.ClientRepository,
	orderRepo repository.OrderRepository,
	outputDir string,
	logger *zap.Logger,
) ReportService {
	return &reportService{
		clientRepo: clientRepo,
		orderRepo:  orderRepo,
		outputDir:  outputDir,
		logger:     logger,
	}
}

func (s *reportService) reportPath(entity string) (string, error) {
	if err := os.MkdirAll(s.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	name := fmt.Sprintf("%s_report_%s.pdf", entity, time.Now().Format("20060102_150405"))
	return filepath.Join(s.outputDir, name), nil
}

func (s *reportService) GenerateClientsReport() (string, error) {
	clients, err := s.clientRepo.GetAll(nil)
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(clients))
	for _, client := range clients {
		row := []string{
			strconv.FormatUint(uint64(client.ID), 10),
			string(client.ClientType),
			client.Phone,
			client.Email,
			"", "", "",
		}
		if client.ClientType == models.ClientLegalEntity {
			le, err := s.clientRepo.GetLegalEntity(client.ID)
			if err != nil {
				return "", err
			}
			if le != nil {
				row[4], row[5], row[6] = le.INN, le.OGRN, le.KPP
			}
		}
		rows = append(rows, row)
	}

	path, err := s.reportPath("clients")
	if err != nil {
		return "", err
	}
	headers := []string{"ID", "Type", "Phone", "Email", "INN", "OGRN", "KPP"}
	if err := pdfreport.Write(path, "Clients Report", headers, rows); err != nil {
		return "", fmt.Errorf("failed to render clients report: %w", err)
	}

	s.logger.Info("clients report generated", zap.String("path", path), zap.Int("rows", len(rows)))
	return path, nil
}

func (s *reportService) GenerateOrdersReport(clientID *uint) (string, error) {
	var (
		orders []models.ClientOrder
		err    error
	)
	if clientID != nil {
		orders, err = s.orderRepo.GetByClientID(*clientID)
	} else {
		orders, err = s.orderRepo.GetAll()
	}
	if err != nil {
		return "", err
	}

	rows := make([][]string, 0, len(orders))
	for _, order := range orders {
		rows = append(rows, []string{
			strconv.FormatUint(uint64(order.ID), 10),
			order.OrderDate.Format("2006-01-02"),
			string(order.Status),
			strconv.FormatUint(uint64(order.ClientID), 10),
		})
	}

	path, err := s.reportPath("orders")
	if err != nil {
		return "", err
	}
	headers := []string{"ID", "Order Date", "Status", "Client"}
	if err := pdfreport.Write(path, "Orders Report", headers, rows); err != nil {
		return "", fmt.Errorf("failed to render orders report: %w", err)
	}

	s.logger.Info("orders report generated", zap.String("path", path), zap.Int("rows", len(rows)))
	return path, nil
}
