package config

// chainLoader layers its sources: every loader that yields values is merged
// over the result so far, so later loaders win key conflicts. A loader that
// fails (missing file, parse error) is skipped; the chain only fails when
// nothing at all could be loaded.
type chainLoader struct {
	loaders []Loader
}

func (c *chainLoader) Load() (map[string]any, error) {
	merged := make(map[string]any)
	var lastErr error

	for _, loader := range c.loaders {
		values, err := loader.Load()
		if err != nil {
			lastErr = err
			continue
		}
		deepMerge(merged, values)
	}

	if len(merged) == 0 {
		return nil, ErrNoConfigSource.WithCause(lastErr)
	}
	return merged, nil
}

// deepMerge overlays src onto dst, descending where both sides hold subtrees
// and replacing wholesale otherwise.
func deepMerge(dst, src map[string]any) {
	for k, v := range src {
		srcSub, srcOK := v.(map[string]any)
		dstSub, dstOK := dst[k].(map[string]any)
		if srcOK && dstOK {
			deepMerge(dstSub, srcSub)
			continue
		}
		dst[k] = v
	}
}
