package pricingconfig

import "errors"

var (
	// ErrConfigNotFound возвращается, когда конфигурация ценообразования не найдена
	ErrConfigNotFound = errors.New("pricingconfig.repository: config not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("pricingconfig.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("pricingconfig.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("pricingconfig.repository: failed to scan row")

	// ErrEncodePayload возвращается при ошибке сериализации JSONB-полей
	ErrEncodePayload = errors.New("pricingconfig.repository: failed to encode payload")
)
