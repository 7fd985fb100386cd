package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Option 配置 Manager
type Option func(*Manager)

// WithNamespace 设置指标命名空间，空字符串保留默认值
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		if namespace != "" {
			m.namespace = namespace
		}
	}
}

// WithPrometheusRegistry 使用指定的注册表（测试中避免重复注册）
func WithPrometheusRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}
