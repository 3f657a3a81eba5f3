package service

import (
	"github.com/MKhiriev/orbit-bootstrap/internal/adapter"
	"github.com/MKhiriev/orbit-bootstrap/internal/logger"
)

type ClientServices struct {
	BootstrapService ClientBootstrapService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		BootstrapService: NewClientBootstrapService(serverAdapter, logger),
	}
}
