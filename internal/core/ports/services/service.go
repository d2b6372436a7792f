package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers and
// the scheduler.
type ServiceContainer struct {
	RateStore       RateStoreSvcFacade
	RateSync        RateSyncSvcFacade
	Converter       ConverterSvc
	Tracking        TrackingSvcFacade
	ConversionError ConversionErrorSvcFacade
	ETFPrice        ETFPriceSvcFacade
}
