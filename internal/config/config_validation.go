package config

// applyDefaults fills unset fields with their documented defaults.
// Called after all sources are merged so that every source can still
// override a default.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = DefaultHTTPAddress
	}

	if cfg.App.TokenIssuer == "" {
		cfg.App.TokenIssuer = DefaultTokenIssuer
	}
	if cfg.App.TokenDuration == 0 {
		cfg.App.TokenDuration = DefaultTokenDuration
	}
	if cfg.App.PasswordHashKey == "" {
		cfg.App.PasswordHashKey = DefaultPasswordHashKey
	}

	if cfg.Queue.User == "" {
		cfg.Queue.User = DefaultQueueUser
	}
	if cfg.Queue.Password == "" {
		cfg.Queue.Password = DefaultQueuePass
	}
	if cfg.Queue.Host == "" {
		cfg.Queue.Host = DefaultQueueHost
	}
	if cfg.Queue.Port == "" {
		cfg.Queue.Port = DefaultQueuePort
	}
	if cfg.Queue.QueueName == "" {
		cfg.Queue.QueueName = DefaultQueueName
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The token sign key has no default on purpose: a process that cannot sign
// tokens must not start.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" {
		return ErrMissingTokenSignKey
	}

	return nil
}
