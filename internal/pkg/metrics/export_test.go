package metrics

var CollectSystemMetrics = collectSystemMetrics
